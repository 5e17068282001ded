package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

type VideoServiceInterface interface {
	// List returns only videos the caller's tier may access.
	List(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.TrainingVideo, int64, error)
	// Get enforces the tier predicate on a single video.
	Get(ctx context.Context, userID uuid.UUID, videoID string) (*db_models.TrainingVideo, error)

	Create(ctx context.Context, req request_models.UpsertVideoRequest) (*db_models.TrainingVideo, error)
	Update(ctx context.Context, videoID string, req request_models.UpsertVideoRequest) (*db_models.TrainingVideo, error)
	Delete(ctx context.Context, videoID string) error
}

type VideoService struct {
	videoRepo repositories.VideoRepository
	accessSvc AccessServiceInterface
	logger    *zap.Logger
}

func NewVideoService(videoRepo repositories.VideoRepository, accessSvc AccessServiceInterface, logger *zap.Logger) VideoServiceInterface {
	return &VideoService{
		videoRepo: videoRepo,
		accessSvc: accessSvc,
		logger:    logger,
	}
}

func (v *VideoService) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.TrainingVideo, int64, error) {
	tier, err := v.accessSvc.ResolveTier(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	videos, total, err := v.videoRepo.ListByLevels(ctx, tier.Accessible(), page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return videos, total, nil
}

func (v *VideoService) Get(ctx context.Context, userID uuid.UUID, videoID string) (*db_models.TrainingVideo, error) {
	video, err := v.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if video == nil {
		return nil, utils.ErrVideoNotFound
	}

	allowed, err := v.accessSvc.CanAccess(ctx, userID, video.AccessLevel)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, utils.ErrTierDenied
	}
	return video, nil
}

func (v *VideoService) Create(ctx context.Context, req request_models.UpsertVideoRequest) (*db_models.TrainingVideo, error) {
	video := &db_models.TrainingVideo{
		Title:         req.Title,
		Description:   req.Description,
		URL:           req.URL,
		ThumbnailPath: req.ThumbnailPath,
		DurationSec:   req.DurationSec,
		AccessLevel:   db_models.Tier(req.AccessLevel),
	}
	if err := v.videoRepo.Insert(ctx, video); err != nil {
		v.logger.Error("video create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return video, nil
}

func (v *VideoService) Update(ctx context.Context, videoID string, req request_models.UpsertVideoRequest) (*db_models.TrainingVideo, error) {
	video, err := v.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if video == nil {
		return nil, utils.ErrVideoNotFound
	}

	video.Title = req.Title
	video.Description = req.Description
	video.URL = req.URL
	video.ThumbnailPath = req.ThumbnailPath
	video.DurationSec = req.DurationSec
	video.AccessLevel = db_models.Tier(req.AccessLevel)

	if err := v.videoRepo.Update(ctx, video); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return video, nil
}

func (v *VideoService) Delete(ctx context.Context, videoID string) error {
	video, err := v.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if video == nil {
		return utils.ErrVideoNotFound
	}
	return v.videoRepo.Delete(ctx, videoID)
}
