package dashboard_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitcore/internal/repositories"
	"fitcore/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo,
	provideDashboardService,
	provideUploadService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(repo repositories.DashboardRepository, logger *zap.Logger) services.DashboardServiceInterface {
	return services.NewDashboardService(repo, logger)
}

func provideUploadService(logger *zap.Logger) services.UploadServiceInterface {
	return services.NewUploadService(logger)
}
