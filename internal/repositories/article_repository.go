package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type ArticleRepository interface {
	Insert(ctx context.Context, article *db_models.Article) error
	Update(ctx context.Context, article *db_models.Article) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*db_models.Article, error)
	List(ctx context.Context, page, limit int) ([]db_models.Article, int64, error)

	InsertComment(ctx context.Context, comment *db_models.Comment) error
	FindCommentByID(ctx context.Context, id string) (*db_models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	ListComments(ctx context.Context, articleID uuid.UUID, page, limit int) ([]db_models.Comment, int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Insert(ctx context.Context, article *db_models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) Update(ctx context.Context, article *db_models.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *articleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Article{}, "id = ?", id).Error
}

func (r *articleRepository) FindByID(ctx context.Context, id string) (*db_models.Article, error) {
	var article db_models.Article
	err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context, page, limit int) ([]db_models.Article, int64, error) {
	var articles []db_models.Article
	var total int64

	if err := r.db.WithContext(ctx).Model(&db_models.Article{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepository) InsertComment(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *articleRepository) FindCommentByID(ctx context.Context, id string) (*db_models.Comment, error) {
	var comment db_models.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *articleRepository) DeleteComment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Comment{}, "id = ?", id).Error
}

func (r *articleRepository) ListComments(ctx context.Context, articleID uuid.UUID, page, limit int) ([]db_models.Comment, int64, error) {
	var comments []db_models.Comment
	var total int64

	base := r.db.WithContext(ctx).Model(&db_models.Comment{}).Where("article_id = ?", articleID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.
		Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
