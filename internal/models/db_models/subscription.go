package db_models

import "github.com/google/uuid"

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusExpired   SubscriptionStatus = "expired"
	SubStatusCancelled SubscriptionStatus = "cancelled"
)

type Subscription struct {
	BaseModel
	UserID   uuid.UUID          `gorm:"index" json:"user_id"`
	PlanCode Tier               `gorm:"type:varchar(16);index" json:"plan_code"`
	Status   SubscriptionStatus `gorm:"type:varchar(16);index" json:"status"`
	StartsAt int64              `gorm:"not null" json:"starts_at"`
	// ExpiresAt is checked together with Status everywhere a tier is derived;
	// an "active" row past its expiry grants nothing.
	ExpiresAt int64 `gorm:"not null" json:"expires_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
