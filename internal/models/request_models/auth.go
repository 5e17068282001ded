package request_models

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name       string `json:"name" binding:"omitempty,min=3,max=50"`
	Phone      string `json:"phone" binding:"omitempty,max=20"`
	AvatarPath string `json:"avatar_path" binding:"omitempty,max=255"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type RequestForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOtpRequest struct {
	Token string `json:"token" binding:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
