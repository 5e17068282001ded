package workout_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitcore/internal/repositories"
	"fitcore/internal/services"
)

var Module = fx.Provide(
	provideWorkoutRepo,
	provideWorkoutService,
	provideDietRepo,
	provideDietService,
)

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutRepository {
	return repositories.NewWorkoutRepository(db)
}

func provideWorkoutService(workoutRepo repositories.WorkoutRepository, notification services.NotificationServiceInterface, logger *zap.Logger) services.WorkoutServiceInterface {
	return services.NewWorkoutService(workoutRepo, notification, logger)
}

func provideDietRepo(db *gorm.DB) repositories.DietRepository {
	return repositories.NewDietRepository(db)
}

func provideDietService(dietRepo repositories.DietRepository, notification services.NotificationServiceInterface, logger *zap.Logger) services.DietServiceInterface {
	return services.NewDietService(dietRepo, notification, logger)
}
