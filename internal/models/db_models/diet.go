package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DietPlan struct {
	BaseModel
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CoachID     uuid.UUID `gorm:"index" json:"coach_id"`
	// Meals holds the daily meal breakdown (meal, foods, calories).
	Meals datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"meals"`

	Coach User `gorm:"foreignKey:CoachID" json:"-"`
}

type UserDietPlan struct {
	BaseModel
	PlanID     uuid.UUID        `gorm:"index" json:"plan_id"`
	UserID     uuid.UUID        `gorm:"index" json:"user_id"`
	AssignedBy uuid.UUID        `json:"assigned_by"`
	Status     AssignmentStatus `gorm:"type:varchar(16);default:active" json:"status"`
	Notes      string           `json:"notes,omitempty"`

	Plan DietPlan `gorm:"foreignKey:PlanID" json:"-"`
	User User     `gorm:"foreignKey:UserID" json:"-"`
}
