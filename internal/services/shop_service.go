package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

type ShopServiceInterface interface {
	ListProducts(ctx context.Context, page, limit int, includeInactive bool) ([]db_models.Product, int64, error)
	GetProduct(ctx context.Context, id string) (*db_models.Product, error)
	CreateProduct(ctx context.Context, req request_models.UpsertProductRequest) (*db_models.Product, error)
	UpdateProduct(ctx context.Context, id string, req request_models.UpsertProductRequest) (*db_models.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	Checkout(ctx context.Context, userID uuid.UUID, req request_models.CheckoutRequest) (*db_models.Order, error)
	MyOrders(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Order, int64, error)
	AllOrders(ctx context.Context, page, limit int) ([]db_models.Order, int64, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status string) (*db_models.Order, error)
}

type ShopService struct {
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	activity    ActivityServiceInterface
	logger      *zap.Logger
}

func NewShopService(
	productRepo repositories.ProductRepository,
	orderRepo repositories.OrderRepository,
	activity ActivityServiceInterface,
	logger *zap.Logger,
) ShopServiceInterface {
	return &ShopService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		activity:    activity,
		logger:      logger,
	}
}

func (s *ShopService) ListProducts(ctx context.Context, page, limit int, includeInactive bool) ([]db_models.Product, int64, error) {
	products, total, err := s.productRepo.List(ctx, page, limit, !includeInactive)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return products, total, nil
}

func (s *ShopService) GetProduct(ctx context.Context, id string) (*db_models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	return product, nil
}

func (s *ShopService) CreateProduct(ctx context.Context, req request_models.UpsertProductRequest) (*db_models.Product, error) {
	product := &db_models.Product{
		Name:        req.Name,
		Description: req.Description,
		PriceMinor:  req.PriceMinor,
		Currency:    req.Currency,
		Stock:       req.Stock,
		ImagePath:   req.ImagePath,
		IsActive:    true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if err := s.productRepo.Insert(ctx, product); err != nil {
		s.logger.Error("product create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return product, nil
}

func (s *ShopService) UpdateProduct(ctx context.Context, id string, req request_models.UpsertProductRequest) (*db_models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	product.Name = req.Name
	product.Description = req.Description
	product.PriceMinor = req.PriceMinor
	product.Currency = req.Currency
	product.Stock = req.Stock
	product.ImagePath = req.ImagePath
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return product, nil
}

func (s *ShopService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if product == nil {
		return utils.ErrProductNotFound
	}
	return s.productRepo.Delete(ctx, id)
}

func (s *ShopService) Checkout(ctx context.Context, userID uuid.UUID, req request_models.CheckoutRequest) (*db_models.Order, error) {
	items := make([]repositories.CheckoutItem, 0, len(req.Items))
	for _, line := range req.Items {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, utils.ErrProductNotFound
		}
		items = append(items, repositories.CheckoutItem{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	order, err := s.orderRepo.Checkout(ctx, userID, items, req.Method)
	if err != nil {
		if err == utils.ErrProductNotFound || err == utils.ErrOutOfStock {
			return nil, err
		}
		s.logger.Error("checkout failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.activity.Record(ctx, userID, "order.checkout", map[string]any{
		"order_id":    order.ID.String(),
		"total_minor": order.TotalMinor,
		"items":       len(order.Items),
	})
	return order, nil
}

func (s *ShopService) MyOrders(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Order, int64, error) {
	orders, total, err := s.orderRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return orders, total, nil
}

func (s *ShopService) AllOrders(ctx context.Context, page, limit int) ([]db_models.Order, int64, error) {
	orders, total, err := s.orderRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return orders, total, nil
}

func (s *ShopService) UpdateOrderStatus(ctx context.Context, orderID string, status string) (*db_models.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	order.Status = db_models.OrderStatus(status)
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return order, nil
}
