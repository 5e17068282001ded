package db_models

import "github.com/google/uuid"

type Article struct {
	BaseModel
	AuthorID  uuid.UUID `gorm:"index" json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	CoverPath string    `json:"cover_path,omitempty"`

	Author   User      `gorm:"foreignKey:AuthorID" json:"-"`
	Comments []Comment `gorm:"foreignKey:ArticleID" json:"-"`
}

type Comment struct {
	BaseModel
	ArticleID uuid.UUID `gorm:"index" json:"article_id"`
	AuthorID  uuid.UUID `gorm:"index" json:"author_id"`
	Body      string    `gorm:"type:text" json:"body"`

	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}
