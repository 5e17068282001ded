package db_models

import "github.com/google/uuid"

type Class struct {
	BaseModel
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CoachID     uuid.UUID `gorm:"index" json:"coach_id"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	StartsAt    int64     `gorm:"index" json:"starts_at"`
	DurationMin int       `json:"duration_min"`

	Coach        User               `gorm:"foreignKey:CoachID" json:"-"`
	Reservations []ClassReservation `gorm:"foreignKey:ClassID" json:"-"`
}

// ClassReservation holds one seat in a class for one user. The compound
// unique index backs the one-reservation-per-user rule at the data layer.
type ClassReservation struct {
	BaseModel
	ClassID uuid.UUID `gorm:"index;uniqueIndex:idx_class_user" json:"class_id"`
	UserID  uuid.UUID `gorm:"index;uniqueIndex:idx_class_user" json:"user_id"`

	Class Class `gorm:"foreignKey:ClassID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}
