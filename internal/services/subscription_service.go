package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

type SubscriptionServiceInterface interface {
	ListPlans(ctx context.Context) ([]db_models.Plan, error)
	UpsertPlan(ctx context.Context, req request_models.UpsertPlanRequest) (*db_models.Plan, error)

	Subscribe(ctx context.Context, userID uuid.UUID, req request_models.SubscribeRequest) (*db_models.Subscription, error)
	Cancel(ctx context.Context, userID uuid.UUID) error
	Current(ctx context.Context, userID uuid.UUID) (*db_models.Subscription, error)
	History(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error)
}

type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	planRepo         repositories.PlanRepository
	paymentRepo      PaymentRecorder
	activity         ActivityServiceInterface
	logger           *zap.Logger
	now              func() time.Time
}

// PaymentRecorder abstracts the payment insert so subscription purchases can
// record payment rows without depending on the full order repository.
type PaymentRecorder interface {
	RecordPayment(ctx context.Context, payment *db_models.Payment) error
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	planRepo repositories.PlanRepository,
	paymentRepo PaymentRecorder,
	activity ActivityServiceInterface,
	logger *zap.Logger,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		paymentRepo:      paymentRepo,
		activity:         activity,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *SubscriptionService) ListPlans(ctx context.Context) ([]db_models.Plan, error) {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (s *SubscriptionService) UpsertPlan(ctx context.Context, req request_models.UpsertPlanRequest) (*db_models.Plan, error) {
	code := db_models.Tier(req.Code)
	plan, err := s.planRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if plan == nil {
		plan = &db_models.Plan{Code: code}
	}
	plan.Name = req.Name
	plan.Description = req.Description
	plan.PriceMinor = req.PriceMinor
	plan.Currency = req.Currency
	plan.DurationDays = req.DurationDays
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if plan.ID == uuid.Nil {
		err = s.planRepo.Insert(ctx, plan)
	} else {
		err = s.planRepo.Update(ctx, plan)
	}
	if err != nil {
		s.logger.Error("plan upsert failed", zap.String("code", req.Code), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

// Subscribe renews or upgrades an existing active subscription in place, or
// creates a new one; either way a payment row is recorded at the plan price.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID uuid.UUID, req request_models.SubscribeRequest) (*db_models.Subscription, error) {
	plan, err := s.planRepo.FindByCode(ctx, db_models.Tier(req.PlanCode))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || !plan.IsActive {
		return nil, utils.ErrPlanNotFound
	}

	now := s.now()
	duration := time.Duration(plan.DurationDays) * 24 * time.Hour

	sub, err := s.subscriptionRepo.FindActiveByUser(ctx, userID, now.Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if sub != nil {
		if sub.PlanCode == plan.Code {
			// Renewal extends from the current expiry.
			sub.ExpiresAt = time.Unix(sub.ExpiresAt, 0).Add(duration).Unix()
		} else {
			sub.PlanCode = plan.Code
			sub.ExpiresAt = now.Add(duration).Unix()
		}
		if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		sub = &db_models.Subscription{
			UserID:    userID,
			PlanCode:  plan.Code,
			Status:    db_models.SubStatusActive,
			StartsAt:  now.Unix(),
			ExpiresAt: now.Add(duration).Unix(),
		}
		if err := s.subscriptionRepo.Insert(ctx, sub); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	payment := &db_models.Payment{
		UserID:         userID,
		SubscriptionID: &sub.ID,
		AmountMinor:    plan.PriceMinor,
		Currency:       plan.Currency,
		Method:         req.Method,
		Status:         db_models.PaymentCompleted,
	}
	if err := s.paymentRepo.RecordPayment(ctx, payment); err != nil {
		s.logger.Error("subscription payment record failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.activity.Record(ctx, userID, "subscription.purchased", map[string]any{
		"plan":       string(plan.Code),
		"expires_at": sub.ExpiresAt,
	})
	return sub, nil
}

func (s *SubscriptionService) Cancel(ctx context.Context, userID uuid.UUID) error {
	sub, err := s.subscriptionRepo.FindActiveByUser(ctx, userID, s.now().Unix())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		return utils.ErrRecordNotFound
	}
	sub.Status = db_models.SubStatusCancelled
	if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
		return utils.ErrDatabaseError
	}
	s.activity.Record(ctx, userID, "subscription.cancelled", map[string]any{
		"plan": string(sub.PlanCode),
	})
	return nil
}

func (s *SubscriptionService) Current(ctx context.Context, userID uuid.UUID) (*db_models.Subscription, error) {
	sub, err := s.subscriptionRepo.FindActiveByUser(ctx, userID, s.now().Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrRecordNotFound
	}
	return sub, nil
}

func (s *SubscriptionService) History(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	subs, err := s.subscriptionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return subs, nil
}
