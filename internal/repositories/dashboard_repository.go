package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type PlanCount struct {
	PlanCode string
	Count    int64
}

type RoleCount struct {
	Role  string
	Count int64
}

type DashboardRepository interface {
	CountUsersByRole(ctx context.Context) ([]RoleCount, error)
	CountActiveSubscriptionsByPlan(ctx context.Context, now int64) ([]PlanCount, error)
	CountClasses(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountOpenTickets(ctx context.Context) (int64, error)
	RevenueBetween(ctx context.Context, start, end time.Time) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountUsersByRole(ctx context.Context) ([]RoleCount, error) {
	var rows []RoleCount
	err := r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) CountActiveSubscriptionsByPlan(ctx context.Context, now int64) ([]PlanCount, error) {
	var rows []PlanCount
	err := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Select("plan_code, COUNT(*) AS count").
		Where("status = ? AND expires_at > ?", db_models.SubStatusActive, now).
		Group("plan_code").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) CountClasses(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Class{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Order{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountOpenTickets(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Ticket{}).
		Where("status = ?", db_models.TicketOpen).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) RevenueBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var sum *int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Select("SUM(amount_minor)").
		Where("status = ? AND created_at BETWEEN ? AND ?",
			db_models.PaymentCompleted, start.Unix(), end.Unix()).
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
