package request_models

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin coach user"`
}

type AssignCoachRequest struct {
	CoachID string `json:"coach_id" binding:"required,uuid4"`
}
