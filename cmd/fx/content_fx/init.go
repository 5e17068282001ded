package content_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitcore/internal/repositories"
	"fitcore/internal/services"
)

var Module = fx.Provide(
	provideArticleRepo,
	provideArticleService,
	provideTicketRepo,
	provideTicketService,
)

func provideArticleRepo(db *gorm.DB) repositories.ArticleRepository {
	return repositories.NewArticleRepository(db)
}

func provideArticleService(articleRepo repositories.ArticleRepository, logger *zap.Logger) services.ArticleServiceInterface {
	return services.NewArticleService(articleRepo, logger)
}

func provideTicketRepo(db *gorm.DB) repositories.TicketRepository {
	return repositories.NewTicketRepository(db)
}

func provideTicketService(ticketRepo repositories.TicketRepository, notification services.NotificationServiceInterface, logger *zap.Logger) services.TicketServiceInterface {
	return services.NewTicketService(ticketRepo, notification, logger)
}
