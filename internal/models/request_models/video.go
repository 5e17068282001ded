package request_models

type UpsertVideoRequest struct {
	Title         string `json:"title" binding:"required,max=120"`
	Description   string `json:"description"`
	URL           string `json:"url" binding:"required,url"`
	ThumbnailPath string `json:"thumbnail_path"`
	DurationSec   int    `json:"duration_sec" binding:"omitempty,min=1"`
	AccessLevel   string `json:"access_level" binding:"required,oneof=bronze silver gold"`
}
