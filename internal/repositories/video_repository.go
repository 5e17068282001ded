package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type VideoRepository interface {
	Insert(ctx context.Context, video *db_models.TrainingVideo) error
	Update(ctx context.Context, video *db_models.TrainingVideo) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*db_models.TrainingVideo, error)
	ListByLevels(ctx context.Context, levels []db_models.Tier, page, limit int) ([]db_models.TrainingVideo, int64, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Insert(ctx context.Context, video *db_models.TrainingVideo) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepository) Update(ctx context.Context, video *db_models.TrainingVideo) error {
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *videoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.TrainingVideo{}, "id = ?", id).Error
}

func (r *videoRepository) FindByID(ctx context.Context, id string) (*db_models.TrainingVideo, error) {
	var video db_models.TrainingVideo
	err := r.db.WithContext(ctx).First(&video, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) ListByLevels(ctx context.Context, levels []db_models.Tier, page, limit int) ([]db_models.TrainingVideo, int64, error) {
	var videos []db_models.TrainingVideo
	var total int64

	base := r.db.WithContext(ctx).Model(&db_models.TrainingVideo{}).Where("access_level IN ?", levels)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}
