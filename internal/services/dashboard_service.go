package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fitcore/internal/models/response_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

type DashboardServiceInterface interface {
	BuildReport(ctx context.Context, start, end time.Time) (*response_models.DashboardReport, error)
}

type DashboardService struct {
	repo   repositories.DashboardRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewDashboardService(repo repositories.DashboardRepository, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{repo: repo, now: time.Now, logger: logger}
}

// BuildReport aggregates the admin overview for the given period. A zero end
// means "now"; a zero start means 30 days before the end.
func (s *DashboardService) BuildReport(ctx context.Context, start, end time.Time) (*response_models.DashboardReport, error) {
	if end.IsZero() {
		end = s.now()
	}
	if start.IsZero() {
		start = end.AddDate(0, 0, -30)
	}

	roleCounts, err := s.repo.CountUsersByRole(ctx)
	if err != nil {
		s.logger.Error("dashboard user counts failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	usersByRole := make(map[string]int64, len(roleCounts))
	var totalUsers int64
	for _, rc := range roleCounts {
		usersByRole[rc.Role] = rc.Count
		totalUsers += rc.Count
	}

	planCounts, err := s.repo.CountActiveSubscriptionsByPlan(ctx, s.now().Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	var activeSubs int64
	for _, pc := range planCounts {
		activeSubs += pc.Count
	}
	planMix := make([]response_models.PlanMixItem, 0, len(planCounts))
	for _, pc := range planCounts {
		item := response_models.PlanMixItem{PlanCode: pc.PlanCode, Count: pc.Count}
		if activeSubs > 0 {
			item.Percent = float64(pc.Count) / float64(activeSubs) * 100
		}
		planMix = append(planMix, item)
	}

	totalClasses, err := s.repo.CountClasses(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalOrders, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	openTickets, err := s.repo.CountOpenTickets(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	revenue, err := s.repo.RevenueBetween(ctx, start, end)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.DashboardReport{
		Range:               response_models.TimeRange{Start: start, End: end},
		TotalUsers:          totalUsers,
		UsersByRole:         usersByRole,
		ActiveSubscriptions: activeSubs,
		PlanMix:             planMix,
		TotalClasses:        totalClasses,
		TotalOrders:         totalOrders,
		RevenueMinor:        revenue,
		Currency:            "USD",
		OpenTickets:         openTickets,
	}, nil
}
