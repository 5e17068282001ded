package db_models

import "gorm.io/datatypes"

type Plan struct {
	BaseModel
	Code         Tier   `gorm:"uniqueIndex;type:varchar(16)" json:"code"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	PriceMinor   int64  `json:"price_minor"`
	Currency     string `gorm:"size:3" json:"currency"`
	DurationDays int    `gorm:"default:30" json:"duration_days"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"features"`
}
