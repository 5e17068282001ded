package request_models

type SubscribeRequest struct {
	PlanCode string `json:"plan_code" binding:"required,oneof=bronze silver gold"`
	Method   string `json:"method" binding:"required"`
}

type UpsertPlanRequest struct {
	Code         string `json:"code" binding:"required,oneof=bronze silver gold"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	PriceMinor   int64  `json:"price_minor" binding:"required,min=0"`
	Currency     string `json:"currency" binding:"required,len=3"`
	DurationDays int    `json:"duration_days" binding:"required,min=1"`
	IsActive     *bool  `json:"is_active"`
}
