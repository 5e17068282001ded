package class_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitcore/internal/repositories"
	"fitcore/internal/services"
)

var Module = fx.Provide(provideClassRepo, provideClassService)

func provideClassRepo(db *gorm.DB) repositories.ClassRepository {
	return repositories.NewClassRepository(db)
}

func provideClassService(
	classRepo repositories.ClassRepository,
	userRepo repositories.UserRepository,
	notification services.NotificationServiceInterface,
	activity services.ActivityServiceInterface,
	logger *zap.Logger,
) services.ClassServiceInterface {
	return services.NewClassService(classRepo, userRepo, notification, activity, logger)
}
