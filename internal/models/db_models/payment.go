package db_models

import "github.com/google/uuid"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type Payment struct {
	BaseModel
	UserID         uuid.UUID     `gorm:"index" json:"user_id"`
	OrderID        *uuid.UUID    `gorm:"index" json:"order_id,omitempty"`
	SubscriptionID *uuid.UUID    `gorm:"index" json:"subscription_id,omitempty"`
	AmountMinor    int64         `gorm:"not null" json:"amount_minor"`
	Currency       string        `gorm:"size:3" json:"currency"`
	Method         string        `json:"method"`
	Status         PaymentStatus `gorm:"type:varchar(16);index" json:"status"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
