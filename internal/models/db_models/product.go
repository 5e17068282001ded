package db_models

type Product struct {
	BaseModel
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceMinor  int64  `gorm:"not null" json:"price_minor"`
	Currency    string `gorm:"size:3" json:"currency"`
	Stock       int    `gorm:"not null;default:0" json:"stock"`
	ImagePath   string `json:"image_path,omitempty"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}
