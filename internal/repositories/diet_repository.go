package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type DietRepository interface {
	InsertPlan(ctx context.Context, plan *db_models.DietPlan) error
	UpdatePlan(ctx context.Context, plan *db_models.DietPlan) error
	DeletePlan(ctx context.Context, id string) error
	FindPlanByID(ctx context.Context, id string) (*db_models.DietPlan, error)
	ListPlans(ctx context.Context, page, limit int) ([]db_models.DietPlan, int64, error)

	InsertAssignment(ctx context.Context, a *db_models.UserDietPlan) error
	UpdateAssignment(ctx context.Context, a *db_models.UserDietPlan) error
	FindAssignmentByID(ctx context.Context, id string) (*db_models.UserDietPlan, error)
	ListAssignmentsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserDietPlan, error)
}

type dietRepository struct {
	db *gorm.DB
}

func NewDietRepository(db *gorm.DB) DietRepository {
	return &dietRepository{db: db}
}

func (r *dietRepository) InsertPlan(ctx context.Context, plan *db_models.DietPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *dietRepository) UpdatePlan(ctx context.Context, plan *db_models.DietPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *dietRepository) DeletePlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.DietPlan{}, "id = ?", id).Error
}

func (r *dietRepository) FindPlanByID(ctx context.Context, id string) (*db_models.DietPlan, error) {
	var plan db_models.DietPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *dietRepository) ListPlans(ctx context.Context, page, limit int) ([]db_models.DietPlan, int64, error) {
	var plans []db_models.DietPlan
	var total int64

	if err := r.db.WithContext(ctx).Model(&db_models.DietPlan{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&plans).Error
	if err != nil {
		return nil, 0, err
	}
	return plans, total, nil
}

func (r *dietRepository) InsertAssignment(ctx context.Context, a *db_models.UserDietPlan) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *dietRepository) UpdateAssignment(ctx context.Context, a *db_models.UserDietPlan) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *dietRepository) FindAssignmentByID(ctx context.Context, id string) (*db_models.UserDietPlan, error) {
	var a db_models.UserDietPlan
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *dietRepository) ListAssignmentsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserDietPlan, error) {
	var out []db_models.UserDietPlan
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
