package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/pkg/utils"
)

func newAccessService(repo *fakeSubscriptionRepo, now int64) *AccessService {
	return &AccessService{
		subscriptionRepo: repo,
		logger:           zap.NewNop(),
		now:              fixedNow(now),
	}
}

func TestResolveTierDefaultsToBronzeWithoutSubscription(t *testing.T) {
	repo := &fakeSubscriptionRepo{
		FindActiveByUserFn: func(ctx context.Context, userID uuid.UUID, now int64) (*db_models.Subscription, error) {
			return nil, nil
		},
	}
	svc := newAccessService(repo, 1_000)

	tier, err := svc.ResolveTier(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, db_models.TierBronze, tier)
}

func TestResolveTierUsesActiveSubscriptionPlan(t *testing.T) {
	repo := &fakeSubscriptionRepo{
		FindActiveByUserFn: func(ctx context.Context, userID uuid.UUID, now int64) (*db_models.Subscription, error) {
			return &db_models.Subscription{PlanCode: db_models.TierGold}, nil
		},
	}
	svc := newAccessService(repo, 1_000)

	tier, err := svc.ResolveTier(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, db_models.TierGold, tier)
}

func TestResolveTierPassesCurrentTimeToQuery(t *testing.T) {
	var seenNow int64
	repo := &fakeSubscriptionRepo{
		FindActiveByUserFn: func(ctx context.Context, userID uuid.UUID, now int64) (*db_models.Subscription, error) {
			seenNow = now
			return nil, nil
		},
	}
	svc := newAccessService(repo, 1_700_000_000)

	_, err := svc.ResolveTier(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000), seenNow)
}

func TestResolveTierUnknownPlanCodeFallsBackToBronze(t *testing.T) {
	repo := &fakeSubscriptionRepo{
		FindActiveByUserFn: func(ctx context.Context, userID uuid.UUID, now int64) (*db_models.Subscription, error) {
			return &db_models.Subscription{PlanCode: db_models.Tier("platinum")}, nil
		},
	}
	svc := newAccessService(repo, 1_000)

	tier, err := svc.ResolveTier(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, db_models.TierBronze, tier)
}

func TestResolveTierRepositoryErrorIsDatabaseError(t *testing.T) {
	repo := &fakeSubscriptionRepo{
		FindActiveByUserFn: func(ctx context.Context, userID uuid.UUID, now int64) (*db_models.Subscription, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newAccessService(repo, 1_000)

	_, err := svc.ResolveTier(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestCanAccessMatrix(t *testing.T) {
	cases := []struct {
		name     string
		sub      *db_models.Subscription
		resource db_models.Tier
		want     bool
	}{
		{"no subscription, bronze video", nil, db_models.TierBronze, true},
		{"no subscription, silver video", nil, db_models.TierSilver, false},
		{"no subscription, gold video", nil, db_models.TierGold, false},
		{"silver sub, bronze video", &db_models.Subscription{PlanCode: db_models.TierSilver}, db_models.TierBronze, true},
		{"silver sub, silver video", &db_models.Subscription{PlanCode: db_models.TierSilver}, db_models.TierSilver, true},
		{"silver sub, gold video", &db_models.Subscription{PlanCode: db_models.TierSilver}, db_models.TierGold, false},
		{"gold sub, gold video", &db_models.Subscription{PlanCode: db_models.TierGold}, db_models.TierGold, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeSubscriptionRepo{
				FindActiveByUserFn: func(ctx context.Context, userID uuid.UUID, now int64) (*db_models.Subscription, error) {
					return tc.sub, nil
				},
			}
			svc := newAccessService(repo, time.Now().Unix())

			ok, err := svc.CanAccess(context.Background(), uuid.New(), tc.resource)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
