package request_models

import "encoding/json"

type UpsertWorkoutPlanRequest struct {
	Title       string          `json:"title" binding:"required,max=120"`
	Description string          `json:"description"`
	Entries     json.RawMessage `json:"entries"`
}

type AssignPlanRequest struct {
	PlanID string `json:"plan_id" binding:"required,uuid4"`
	UserID string `json:"user_id" binding:"required,uuid4"`
	Notes  string `json:"notes"`
}

type UpdateAssignmentRequest struct {
	Status   string `json:"status" binding:"omitempty,oneof=active completed dropped"`
	Progress *int   `json:"progress" binding:"omitempty,min=0,max=100"`
	Notes    string `json:"notes"`
}
