package response_models

type LoginResponse struct {
	Token string `json:"token"`
	Tier  string `json:"tier"`
	Role  string `json:"role"`
}
