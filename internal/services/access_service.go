package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

// AccessServiceInterface derives a user's tier from their subscription.
// Every consumer resolves through this service; nothing caches the result
// and no "current subscription" pointer exists on the user record, so an
// expiry is observed on the next request.
type AccessServiceInterface interface {
	ResolveTier(ctx context.Context, userID uuid.UUID) (db_models.Tier, error)
	CanAccess(ctx context.Context, userID uuid.UUID, resource db_models.Tier) (bool, error)
}

type AccessService struct {
	subscriptionRepo repositories.SubscriptionRepository
	logger           *zap.Logger
	now              func() time.Time
}

func NewAccessService(subscriptionRepo repositories.SubscriptionRepository, logger *zap.Logger) AccessServiceInterface {
	return &AccessService{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// ResolveTier returns the plan of the user's active, unexpired subscription,
// defaulting to bronze when none exists. Status alone is not trusted: a row
// still marked active but past its expiry grants nothing.
func (a *AccessService) ResolveTier(ctx context.Context, userID uuid.UUID) (db_models.Tier, error) {
	sub, err := a.subscriptionRepo.FindActiveByUser(ctx, userID, a.now().Unix())
	if err != nil {
		a.logger.Error("resolve tier lookup failed", zap.String("user_id", userID.String()), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if sub == nil {
		return db_models.TierBronze, nil
	}
	if !db_models.ValidTier(string(sub.PlanCode)) {
		return db_models.TierBronze, nil
	}
	return sub.PlanCode, nil
}

func (a *AccessService) CanAccess(ctx context.Context, userID uuid.UUID, resource db_models.Tier) (bool, error) {
	tier, err := a.ResolveTier(ctx, userID)
	if err != nil {
		return false, err
	}
	return tier.Allows(resource), nil
}
