package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"fitcore/internal/models/db_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

// ActivityServiceInterface is the audit trail. Actor and metadata are passed
// explicitly; the service never reaches into request state on its own.
type ActivityServiceInterface interface {
	Record(ctx context.Context, actorID uuid.UUID, action string, metadata map[string]any)
	List(ctx context.Context, page, limit int) ([]db_models.ActivityLog, int64, error)
}

type ActivityService struct {
	repo   repositories.ActivityRepository
	logger *zap.Logger
}

func NewActivityService(repo repositories.ActivityRepository, logger *zap.Logger) ActivityServiceInterface {
	return &ActivityService{repo: repo, logger: logger}
}

// Record writes best-effort; a failed audit insert is logged but never fails
// the domain operation it annotates.
func (s *ActivityService) Record(ctx context.Context, actorID uuid.UUID, action string, metadata map[string]any) {
	meta := datatypes.JSON([]byte("{}"))
	if metadata != nil {
		if raw, err := json.Marshal(metadata); err == nil {
			meta = datatypes.JSON(raw)
		}
	}
	entry := &db_models.ActivityLog{
		ActorID:  actorID,
		Action:   action,
		Metadata: meta,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		s.logger.Warn("activity record failed",
			zap.String("action", action),
			zap.String("actor_id", actorID.String()),
			zap.Error(err))
	}
}

func (s *ActivityService) List(ctx context.Context, page, limit int) ([]db_models.ActivityLog, int64, error) {
	logs, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return logs, total, nil
}
