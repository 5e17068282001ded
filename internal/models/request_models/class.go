package request_models

type UpsertClassRequest struct {
	Title       string `json:"title" binding:"required,max=120"`
	Description string `json:"description"`
	CoachID     string `json:"coach_id" binding:"required,uuid4"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	StartsAt    int64  `json:"starts_at" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
}
