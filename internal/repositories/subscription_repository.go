package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type SubscriptionRepository interface {
	// FindActiveByUser is the single authoritative query for a user's
	// current subscription: status active AND expiry after now.
	FindActiveByUser(ctx context.Context, userID uuid.UUID, now int64) (*db_models.Subscription, error)
	Insert(ctx context.Context, sub *db_models.Subscription) error
	Update(ctx context.Context, sub *db_models.Subscription) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID, now int64) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND expires_at > ?", userID, db_models.SubStatusActive, now).
		Order("expires_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) Insert(ctx context.Context, sub *db_models.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *db_models.Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *subscriptionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}
