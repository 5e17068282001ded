package subscription_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitcore/internal/repositories"
	"fitcore/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo,
	providePlanRepo,
	providePaymentRepo,
	providePaymentRecorder,
	provideAccessService,
	provideSubscriptionService,
)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentRecorder(paymentRepo repositories.PaymentRepository) services.PaymentRecorder {
	return paymentRepo
}

func provideAccessService(subscriptionRepo repositories.SubscriptionRepository, logger *zap.Logger) services.AccessServiceInterface {
	return services.NewAccessService(subscriptionRepo, logger)
}

func provideSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	planRepo repositories.PlanRepository,
	paymentRecorder services.PaymentRecorder,
	activity services.ActivityServiceInterface,
	logger *zap.Logger,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subscriptionRepo, planRepo, paymentRecorder, activity, logger)
}
