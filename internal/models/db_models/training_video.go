package db_models

type TrainingVideo struct {
	BaseModel
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	URL           string `json:"url"`
	ThumbnailPath string `json:"thumbnail_path,omitempty"`
	DurationSec   int    `json:"duration_sec,omitempty"`
	AccessLevel   Tier   `gorm:"type:varchar(16);index;not null" json:"access_level"`
}
