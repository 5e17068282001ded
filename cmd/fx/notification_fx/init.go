package notification_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitcore/internal/repositories"
	"fitcore/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepo,
	provideNotificationService,
	provideActivityRepo,
	provideActivityService,
)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(repo repositories.NotificationRepository, logger *zap.Logger) services.NotificationServiceInterface {
	return services.NewNotificationService(repo, logger)
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(repo repositories.ActivityRepository, logger *zap.Logger) services.ActivityServiceInterface {
	return services.NewActivityService(repo, logger)
}
