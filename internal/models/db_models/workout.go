package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WorkoutPlan struct {
	BaseModel
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CoachID     uuid.UUID `gorm:"index" json:"coach_id"`
	// Entries holds the ordered exercise list (name, sets, reps, rest).
	Entries datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"entries"`

	Coach User `gorm:"foreignKey:CoachID" json:"-"`
}

type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "active"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentDropped   AssignmentStatus = "dropped"
)

type UserWorkout struct {
	BaseModel
	PlanID     uuid.UUID        `gorm:"index" json:"plan_id"`
	UserID     uuid.UUID        `gorm:"index" json:"user_id"`
	AssignedBy uuid.UUID        `json:"assigned_by"`
	Status     AssignmentStatus `gorm:"type:varchar(16);default:active" json:"status"`
	Progress   int              `gorm:"default:0" json:"progress"`
	Notes      string           `json:"notes,omitempty"`

	Plan WorkoutPlan `gorm:"foreignKey:PlanID" json:"-"`
	User User        `gorm:"foreignKey:UserID" json:"-"`
}
