package video_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitcore/internal/repositories"
	"fitcore/internal/services"
)

var Module = fx.Provide(provideVideoRepo, provideVideoService)

func provideVideoRepo(db *gorm.DB) repositories.VideoRepository {
	return repositories.NewVideoRepository(db)
}

func provideVideoService(videoRepo repositories.VideoRepository, accessSvc services.AccessServiceInterface, logger *zap.Logger) services.VideoServiceInterface {
	return services.NewVideoService(videoRepo, accessSvc, logger)
}
