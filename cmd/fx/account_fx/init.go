package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitcore/internal/repositories"
	"fitcore/internal/services"
	mem "fitcore/pkg/memcache"
	"fitcore/pkg/middleware"
)

var Module = fx.Provide(
	provideUserRepo,
	provideAccountService,
	provideIdentityResolver,
)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(
	userRepo repositories.UserRepository,
	accessSvc services.AccessServiceInterface,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
	activity services.ActivityServiceInterface,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, accessSvc, mailService, resetTokens, activity, logger)
}

func provideIdentityResolver(accountService services.AccountServiceInterface) middleware.IdentityResolver {
	return accountService
}
