package db_models

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	BaseModel
	UserID     uuid.UUID   `gorm:"index" json:"user_id"`
	Status     OrderStatus `gorm:"type:varchar(16);index;default:pending" json:"status"`
	TotalMinor int64       `json:"total_minor"`
	Currency   string      `gorm:"size:3" json:"currency"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	User  User        `gorm:"foreignKey:UserID" json:"-"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"index" json:"order_id"`
	ProductID uuid.UUID `gorm:"index" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	// UnitPriceMinor is the price at checkout time; later product edits do
	// not rewrite history.
	UnitPriceMinor int64 `gorm:"not null" json:"unit_price_minor"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}
