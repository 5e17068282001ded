package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

type NotificationServiceInterface interface {
	// Notify persists a notification best-effort; callers are not failed by
	// a notification insert error.
	Notify(ctx context.Context, userID uuid.UUID, typ db_models.NotificationType, title, body string)
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, limit int) ([]db_models.Notification, int64, error)
	MarkRead(ctx context.Context, userID uuid.UUID, notificationID string) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type NotificationService struct {
	repo   repositories.NotificationRepository
	logger *zap.Logger
}

func NewNotificationService(repo repositories.NotificationRepository, logger *zap.Logger) NotificationServiceInterface {
	return &NotificationService{repo: repo, logger: logger}
}

func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, typ db_models.NotificationType, title, body string) {
	n := &db_models.Notification{
		UserID: userID,
		Type:   typ,
		Title:  title,
		Body:   body,
	}
	if err := s.repo.Insert(ctx, n); err != nil {
		s.logger.Warn("notification insert failed",
			zap.String("user_id", userID.String()),
			zap.String("type", string(typ)),
			zap.Error(err))
	}
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, limit int) ([]db_models.Notification, int64, error) {
	notifications, total, err := s.repo.ListByUser(ctx, userID, unreadOnly, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return notifications, total, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID uuid.UUID, notificationID string) error {
	err := s.repo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		if err == utils.ErrRecordNotFound {
			return utils.ErrRecordNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
