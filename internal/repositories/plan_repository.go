package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type PlanRepository interface {
	FindByCode(ctx context.Context, code db_models.Tier) (*db_models.Plan, error)
	List(ctx context.Context) ([]db_models.Plan, error)
	Insert(ctx context.Context, plan *db_models.Plan) error
	Update(ctx context.Context, plan *db_models.Plan) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) FindByCode(ctx context.Context, code db_models.Tier) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) List(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := r.db.WithContext(ctx).Order("price_minor ASC").Find(&plans).Error
	return plans, err
}

func (r *planRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) Update(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}
