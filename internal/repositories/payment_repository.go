package repositories

import (
	"context"

	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type PaymentRepository interface {
	RecordPayment(ctx context.Context, payment *db_models.Payment) error
	ListByUser(ctx context.Context, userID string, page, limit int) ([]db_models.Payment, int64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) RecordPayment(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID string, page, limit int) ([]db_models.Payment, int64, error) {
	var payments []db_models.Payment
	var total int64

	base := r.db.WithContext(ctx).Model(&db_models.Payment{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}
