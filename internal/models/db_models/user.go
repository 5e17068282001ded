package db_models

import "github.com/google/uuid"

type User struct {
	BaseModel
	Name         string     `json:"name"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `gorm:"index;default:user" json:"role"`
	Phone        string     `json:"phone,omitempty"`
	AvatarPath   string     `json:"avatar_path,omitempty"`
	CoachID      *uuid.UUID `gorm:"index" json:"coach_id,omitempty"`

	Coach *User `gorm:"foreignKey:CoachID" json:"-"`
}
