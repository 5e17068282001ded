package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitcore/internal/models/db_models"
	"fitcore/pkg/utils"
)

type ClassRepository interface {
	Insert(ctx context.Context, class *db_models.Class) error
	Update(ctx context.Context, class *db_models.Class) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*db_models.Class, error)
	List(ctx context.Context, page, limit int) ([]db_models.Class, int64, error)
	CountReservations(ctx context.Context, classID uuid.UUID) (int64, error)

	// Reserve books one seat inside a single transaction. The class row is
	// locked for the duration, so concurrent requests for the last seat
	// serialize and at most one succeeds. Returns utils.ErrClassNotFound,
	// utils.ErrClassFull or utils.ErrAlreadyReserved on rejection.
	Reserve(ctx context.Context, classID, userID uuid.UUID) (*db_models.ClassReservation, error)
	CancelReservation(ctx context.Context, classID, userID uuid.UUID) error
	ListReservationsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ClassReservation, error)
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Insert(ctx context.Context, class *db_models.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) Update(ctx context.Context, class *db_models.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Class{}, "id = ?", id).Error
}

func (r *classRepository) FindByID(ctx context.Context, id string) (*db_models.Class, error) {
	var class db_models.Class
	err := r.db.WithContext(ctx).First(&class, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) List(ctx context.Context, page, limit int) ([]db_models.Class, int64, error) {
	var classes []db_models.Class
	var total int64

	if err := r.db.WithContext(ctx).Model(&db_models.Class{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("starts_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&classes).Error
	if err != nil {
		return nil, 0, err
	}
	return classes, total, nil
}

func (r *classRepository) CountReservations(ctx context.Context, classID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.ClassReservation{}).
		Where("class_id = ?", classID).
		Count(&count).Error
	return count, err
}

func (r *classRepository) Reserve(ctx context.Context, classID, userID uuid.UUID) (*db_models.ClassReservation, error) {
	var reservation *db_models.ClassReservation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var class db_models.Class
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&class, "id = ?", classID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrClassNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&db_models.ClassReservation{}).
			Where("class_id = ? AND user_id = ?", classID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return utils.ErrAlreadyReserved
		}

		var taken int64
		if err := tx.Model(&db_models.ClassReservation{}).
			Where("class_id = ?", classID).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken >= int64(class.Capacity) {
			return utils.ErrClassFull
		}

		reservation = &db_models.ClassReservation{ClassID: classID, UserID: userID}
		return tx.Create(reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

func (r *classRepository) CancelReservation(ctx context.Context, classID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("class_id = ? AND user_id = ?", classID, userID).
		Delete(&db_models.ClassReservation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrReservationMissing
	}
	return nil
}

func (r *classRepository) ListReservationsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ClassReservation, error) {
	var reservations []db_models.ClassReservation
	err := r.db.WithContext(ctx).
		Preload("Class").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reservations).Error
	return reservations, err
}
