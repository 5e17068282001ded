package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
	"fitcore/pkg/utils"
)

type NotificationRepository interface {
	Insert(ctx context.Context, n *db_models.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, limit int) ([]db_models.Notification, int64, error)
	MarkRead(ctx context.Context, id string, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Insert(ctx context.Context, n *db_models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, limit int) ([]db_models.Notification, int64, error) {
	var notifications []db_models.Notification
	var total int64

	base := r.db.WithContext(ctx).Model(&db_models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		base = base.Where("read = FALSE")
	}
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrRecordNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("user_id = ? AND read = FALSE", userID).
		Update("read", true).Error
}
