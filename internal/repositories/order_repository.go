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

// CheckoutItem is one requested order line.
type CheckoutItem struct {
	ProductID uuid.UUID
	Quantity  int
}

type OrderRepository interface {
	// Checkout creates the order, its items and the payment row in one
	// transaction. Product rows are locked while stock is checked and
	// decremented; totals use the locked price. Returns
	// utils.ErrProductNotFound or utils.ErrOutOfStock on rejection.
	Checkout(ctx context.Context, userID uuid.UUID, items []CheckoutItem, method string) (*db_models.Order, error)
	FindByID(ctx context.Context, id string) (*db_models.Order, error)
	Update(ctx context.Context, order *db_models.Order) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Order, int64, error)
	List(ctx context.Context, page, limit int) ([]db_models.Order, int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Checkout(ctx context.Context, userID uuid.UUID, items []CheckoutItem, method string) (*db_models.Order, error) {
	var order *db_models.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total int64
		currency := ""
		orderItems := make([]db_models.OrderItem, 0, len(items))

		for _, item := range items {
			var product db_models.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ? AND is_active = TRUE", item.ProductID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrProductNotFound
				}
				return err
			}
			if product.Stock < item.Quantity {
				return utils.ErrOutOfStock
			}
			if err := tx.Model(&product).
				Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}

			total += product.PriceMinor * int64(item.Quantity)
			currency = product.Currency
			orderItems = append(orderItems, db_models.OrderItem{
				ProductID:      product.ID,
				Quantity:       item.Quantity,
				UnitPriceMinor: product.PriceMinor,
			})
		}

		order = &db_models.Order{
			UserID:     userID,
			Status:     db_models.OrderPending,
			TotalMinor: total,
			Currency:   currency,
			Items:      orderItems,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		payment := &db_models.Payment{
			UserID:      userID,
			OrderID:     &order.ID,
			AmountMinor: total,
			Currency:    currency,
			Method:      method,
			Status:      db_models.PaymentPending,
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Update(ctx context.Context, order *db_models.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Order, int64, error) {
	var orders []db_models.Order
	var total int64

	base := r.db.WithContext(ctx).Model(&db_models.Order{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) List(ctx context.Context, page, limit int) ([]db_models.Order, int64, error) {
	var orders []db_models.Order
	var total int64

	if err := r.db.WithContext(ctx).Model(&db_models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
