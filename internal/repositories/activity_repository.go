package repositories

import (
	"context"

	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type ActivityRepository interface {
	Insert(ctx context.Context, log *db_models.ActivityLog) error
	List(ctx context.Context, page, limit int) ([]db_models.ActivityLog, int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(ctx context.Context, log *db_models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *activityRepository) List(ctx context.Context, page, limit int) ([]db_models.ActivityLog, int64, error) {
	var logs []db_models.ActivityLog
	var total int64

	if err := r.db.WithContext(ctx).Model(&db_models.ActivityLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
