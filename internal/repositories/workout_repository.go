package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type WorkoutRepository interface {
	InsertPlan(ctx context.Context, plan *db_models.WorkoutPlan) error
	UpdatePlan(ctx context.Context, plan *db_models.WorkoutPlan) error
	DeletePlan(ctx context.Context, id string) error
	FindPlanByID(ctx context.Context, id string) (*db_models.WorkoutPlan, error)
	ListPlans(ctx context.Context, page, limit int) ([]db_models.WorkoutPlan, int64, error)

	InsertAssignment(ctx context.Context, a *db_models.UserWorkout) error
	UpdateAssignment(ctx context.Context, a *db_models.UserWorkout) error
	FindAssignmentByID(ctx context.Context, id string) (*db_models.UserWorkout, error)
	ListAssignmentsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserWorkout, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) InsertPlan(ctx context.Context, plan *db_models.WorkoutPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *workoutRepository) UpdatePlan(ctx context.Context, plan *db_models.WorkoutPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *workoutRepository) DeletePlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.WorkoutPlan{}, "id = ?", id).Error
}

func (r *workoutRepository) FindPlanByID(ctx context.Context, id string) (*db_models.WorkoutPlan, error) {
	var plan db_models.WorkoutPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *workoutRepository) ListPlans(ctx context.Context, page, limit int) ([]db_models.WorkoutPlan, int64, error) {
	var plans []db_models.WorkoutPlan
	var total int64

	if err := r.db.WithContext(ctx).Model(&db_models.WorkoutPlan{}).Count(&total).Error; err != nil {
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

func (r *workoutRepository) InsertAssignment(ctx context.Context, a *db_models.UserWorkout) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *workoutRepository) UpdateAssignment(ctx context.Context, a *db_models.UserWorkout) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *workoutRepository) FindAssignmentByID(ctx context.Context, id string) (*db_models.UserWorkout, error) {
	var a db_models.UserWorkout
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *workoutRepository) ListAssignmentsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserWorkout, error) {
	var out []db_models.UserWorkout
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
