package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	Update(ctx context.Context, user *db_models.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, limit int) ([]db_models.User, int64, error)
	ListByCoach(ctx context.Context, coachID uuid.UUID) ([]db_models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.User{}, "id = ?", id).Error
}

func (r *userRepository) List(ctx context.Context, page, limit int) ([]db_models.User, int64, error) {
	var users []db_models.User
	var total int64

	if err := r.db.WithContext(ctx).Model(&db_models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) ListByCoach(ctx context.Context, coachID uuid.UUID) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).
		Where("coach_id = ?", coachID).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}
