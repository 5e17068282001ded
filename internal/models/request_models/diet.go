package request_models

import "encoding/json"

type UpsertDietPlanRequest struct {
	Title       string          `json:"title" binding:"required,max=120"`
	Description string          `json:"description"`
	Meals       json.RawMessage `json:"meals"`
}
