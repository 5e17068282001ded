package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type ProductRepository interface {
	Insert(ctx context.Context, product *db_models.Product) error
	Update(ctx context.Context, product *db_models.Product) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*db_models.Product, error)
	List(ctx context.Context, page, limit int, activeOnly bool) ([]db_models.Product, int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Insert(ctx context.Context, product *db_models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Update(ctx context.Context, product *db_models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Product{}, "id = ?", id).Error
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*db_models.Product, error) {
	var product db_models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, page, limit int, activeOnly bool) ([]db_models.Product, int64, error) {
	var products []db_models.Product
	var total int64

	base := r.db.WithContext(ctx).Model(&db_models.Product{})
	if activeOnly {
		base = base.Where("is_active = TRUE")
	}
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
