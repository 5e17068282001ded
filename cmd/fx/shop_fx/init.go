package shop_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitcore/internal/repositories"
	"fitcore/internal/services"
)

var Module = fx.Provide(provideProductRepo, provideOrderRepo, provideShopService)

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideShopService(
	productRepo repositories.ProductRepository,
	orderRepo repositories.OrderRepository,
	activity services.ActivityServiceInterface,
	logger *zap.Logger,
) services.ShopServiceInterface {
	return services.NewShopService(productRepo, orderRepo, activity, logger)
}
