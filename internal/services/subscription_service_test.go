package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/pkg/utils"
)

func silverPlan() *db_models.Plan {
	plan := &db_models.Plan{
		Code:         db_models.TierSilver,
		Name:         "Silver",
		PriceMinor:   2999,
		Currency:     "USD",
		DurationDays: 30,
		IsActive:     true,
	}
	plan.ID = uuid.New()
	return plan
}

func newSubscriptionService(subRepo *fakeSubscriptionRepo, planRepo *fakePlanRepo, payments *fakePaymentRecorder, activity *fakeActivity, now int64) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subRepo,
		planRepo:         planRepo,
		paymentRepo:      payments,
		activity:         activity,
		logger:           zap.NewNop(),
		now:              fixedNow(now),
	}
}

func TestSubscribeCreatesNewSubscriptionAndPayment(t *testing.T) {
	now := int64(1_700_000_000)
	plan := silverPlan()
	userID := uuid.New()

	var inserted *db_models.Subscription
	subRepo := &fakeSubscriptionRepo{
		FindActiveByUserFn: func(ctx context.Context, uid uuid.UUID, ts int64) (*db_models.Subscription, error) {
			return nil, nil
		},
		InsertFn: func(ctx context.Context, sub *db_models.Subscription) error {
			inserted = sub
			return nil
		},
	}
	planRepo := &fakePlanRepo{
		FindByCodeFn: func(ctx context.Context, code db_models.Tier) (*db_models.Plan, error) {
			return plan, nil
		},
	}
	payments := &fakePaymentRecorder{}
	activity := &fakeActivity{}
	svc := newSubscriptionService(subRepo, planRepo, payments, activity, now)

	sub, err := svc.Subscribe(context.Background(), userID, request_models.SubscribeRequest{PlanCode: "silver", Method: "card"})
	require.NoError(t, err)
	require.NotNil(t, inserted)

	assert.Equal(t, db_models.SubStatusActive, sub.Status)
	assert.Equal(t, now, sub.StartsAt)
	wantExpiry := time.Unix(now, 0).Add(30 * 24 * time.Hour).Unix()
	assert.Equal(t, wantExpiry, sub.ExpiresAt)

	require.Len(t, payments.Payments, 1)
	assert.Equal(t, int64(2999), payments.Payments[0].AmountMinor)
	assert.Equal(t, db_models.PaymentCompleted, payments.Payments[0].Status)

	require.Len(t, activity.Recorded, 1)
	assert.Equal(t, "subscription.purchased", activity.Recorded[0].Action)
}

func TestSubscribeRenewalExtendsFromCurrentExpiry(t *testing.T) {
	now := int64(1_700_000_000)
	currentExpiry := now + 5*24*3600 // five days still left
	plan := silverPlan()

	existing := &db_models.Subscription{
		PlanCode:  db_models.TierSilver,
		Status:    db_models.SubStatusActive,
		ExpiresAt: currentExpiry,
	}
	var updated *db_models.Subscription
	subRepo := &fakeSubscriptionRepo{
		FindActiveByUserFn: func(ctx context.Context, uid uuid.UUID, ts int64) (*db_models.Subscription, error) {
			return existing, nil
		},
		UpdateFn: func(ctx context.Context, sub *db_models.Subscription) error {
			updated = sub
			return nil
		},
	}
	planRepo := &fakePlanRepo{
		FindByCodeFn: func(ctx context.Context, code db_models.Tier) (*db_models.Plan, error) {
			return plan, nil
		},
	}
	svc := newSubscriptionService(subRepo, planRepo, &fakePaymentRecorder{}, &fakeActivity{}, now)

	sub, err := svc.Subscribe(context.Background(), uuid.New(), request_models.SubscribeRequest{PlanCode: "silver", Method: "card"})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// The five remaining days are preserved, not lost.
	wantExpiry := time.Unix(currentExpiry, 0).Add(30 * 24 * time.Hour).Unix()
	assert.Equal(t, wantExpiry, sub.ExpiresAt)
}

func TestSubscribeSwitchingPlanRestartsFromNow(t *testing.T) {
	now := int64(1_700_000_000)
	goldPlan := silverPlan()
	goldPlan.Code = db_models.TierGold

	existing := &db_models.Subscription{
		PlanCode:  db_models.TierSilver,
		Status:    db_models.SubStatusActive,
		ExpiresAt: now + 10*24*3600,
	}
	subRepo := &fakeSubscriptionRepo{
		FindActiveByUserFn: func(ctx context.Context, uid uuid.UUID, ts int64) (*db_models.Subscription, error) {
			return existing, nil
		},
		UpdateFn: func(ctx context.Context, sub *db_models.Subscription) error { return nil },
	}
	planRepo := &fakePlanRepo{
		FindByCodeFn: func(ctx context.Context, code db_models.Tier) (*db_models.Plan, error) {
			return goldPlan, nil
		},
	}
	svc := newSubscriptionService(subRepo, planRepo, &fakePaymentRecorder{}, &fakeActivity{}, now)

	sub, err := svc.Subscribe(context.Background(), uuid.New(), request_models.SubscribeRequest{PlanCode: "gold", Method: "card"})
	require.NoError(t, err)

	assert.Equal(t, db_models.TierGold, sub.PlanCode)
	wantExpiry := time.Unix(now, 0).Add(30 * 24 * time.Hour).Unix()
	assert.Equal(t, wantExpiry, sub.ExpiresAt)
}

func TestSubscribeInactivePlanRejected(t *testing.T) {
	plan := silverPlan()
	plan.IsActive = false
	planRepo := &fakePlanRepo{
		FindByCodeFn: func(ctx context.Context, code db_models.Tier) (*db_models.Plan, error) {
			return plan, nil
		},
	}
	svc := newSubscriptionService(&fakeSubscriptionRepo{}, planRepo, &fakePaymentRecorder{}, &fakeActivity{}, 1_000)

	_, err := svc.Subscribe(context.Background(), uuid.New(), request_models.SubscribeRequest{PlanCode: "silver", Method: "card"})
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestCancelMarksSubscriptionCancelled(t *testing.T) {
	existing := &db_models.Subscription{
		PlanCode:  db_models.TierGold,
		Status:    db_models.SubStatusActive,
		ExpiresAt: 2_000_000_000,
	}
	var updated *db_models.Subscription
	subRepo := &fakeSubscriptionRepo{
		FindActiveByUserFn: func(ctx context.Context, uid uuid.UUID, ts int64) (*db_models.Subscription, error) {
			return existing, nil
		},
		UpdateFn: func(ctx context.Context, sub *db_models.Subscription) error {
			updated = sub
			return nil
		},
	}
	svc := newSubscriptionService(subRepo, &fakePlanRepo{}, &fakePaymentRecorder{}, &fakeActivity{}, 1_700_000_000)

	err := svc.Cancel(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, db_models.SubStatusCancelled, updated.Status)
}

func TestCancelWithoutActiveSubscription(t *testing.T) {
	subRepo := &fakeSubscriptionRepo{
		FindActiveByUserFn: func(ctx context.Context, uid uuid.UUID, ts int64) (*db_models.Subscription, error) {
			return nil, nil
		},
	}
	svc := newSubscriptionService(subRepo, &fakePlanRepo{}, &fakePaymentRecorder{}, &fakeActivity{}, 1_000)

	err := svc.Cancel(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}
