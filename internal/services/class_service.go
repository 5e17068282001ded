package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/authz"
	"fitcore/pkg/utils"
)

type ClassServiceInterface interface {
	List(ctx context.Context, page, limit int) ([]db_models.Class, int64, error)
	Get(ctx context.Context, classID string) (*db_models.Class, error)
	Create(ctx context.Context, req request_models.UpsertClassRequest) (*db_models.Class, error)
	Update(ctx context.Context, classID string, req request_models.UpsertClassRequest) (*db_models.Class, error)
	Delete(ctx context.Context, classID string) error

	Reserve(ctx context.Context, classID string, userID uuid.UUID) (*db_models.ClassReservation, error)
	CancelReservation(ctx context.Context, classID string, userID uuid.UUID) error
	MyReservations(ctx context.Context, userID uuid.UUID) ([]db_models.ClassReservation, error)
}

type ClassService struct {
	classRepo    repositories.ClassRepository
	userRepo     repositories.UserRepository
	notification NotificationServiceInterface
	activity     ActivityServiceInterface
	logger       *zap.Logger
}

func NewClassService(
	classRepo repositories.ClassRepository,
	userRepo repositories.UserRepository,
	notification NotificationServiceInterface,
	activity ActivityServiceInterface,
	logger *zap.Logger,
) ClassServiceInterface {
	return &ClassService{
		classRepo:    classRepo,
		userRepo:     userRepo,
		notification: notification,
		activity:     activity,
		logger:       logger,
	}
}

func (s *ClassService) List(ctx context.Context, page, limit int) ([]db_models.Class, int64, error) {
	classes, total, err := s.classRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return classes, total, nil
}

func (s *ClassService) Get(ctx context.Context, classID string) (*db_models.Class, error) {
	class, err := s.classRepo.FindByID(ctx, classID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if class == nil {
		return nil, utils.ErrClassNotFound
	}
	return class, nil
}

func (s *ClassService) Create(ctx context.Context, req request_models.UpsertClassRequest) (*db_models.Class, error) {
	coach, err := s.userRepo.FindByID(ctx, req.CoachID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if coach == nil {
		return nil, utils.ErrAccountNotFound
	}
	if coach.Role != string(authz.RoleCoach) {
		return nil, utils.ErrCoachRequired
	}

	class := &db_models.Class{
		Title:       req.Title,
		Description: req.Description,
		CoachID:     coach.ID,
		Capacity:    req.Capacity,
		StartsAt:    req.StartsAt,
		DurationMin: req.DurationMin,
	}
	if err := s.classRepo.Insert(ctx, class); err != nil {
		s.logger.Error("class create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return class, nil
}

func (s *ClassService) Update(ctx context.Context, classID string, req request_models.UpsertClassRequest) (*db_models.Class, error) {
	class, err := s.Get(ctx, classID)
	if err != nil {
		return nil, err
	}

	coachID, err := uuid.Parse(req.CoachID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	class.Title = req.Title
	class.Description = req.Description
	class.CoachID = coachID
	class.Capacity = req.Capacity
	class.StartsAt = req.StartsAt
	class.DurationMin = req.DurationMin

	if err := s.classRepo.Update(ctx, class); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return class, nil
}

func (s *ClassService) Delete(ctx context.Context, classID string) error {
	if _, err := s.Get(ctx, classID); err != nil {
		return err
	}
	return s.classRepo.Delete(ctx, classID)
}

// Reserve delegates the capacity and duplicate checks to the repository's
// transactional path, then fans out the notification and audit entry.
func (s *ClassService) Reserve(ctx context.Context, classID string, userID uuid.UUID) (*db_models.ClassReservation, error) {
	id, err := uuid.Parse(classID)
	if err != nil {
		return nil, utils.ErrClassNotFound
	}

	reservation, err := s.classRepo.Reserve(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	class, lookupErr := s.classRepo.FindByID(ctx, classID)
	title := ""
	if lookupErr == nil && class != nil {
		title = class.Title
	}
	s.notification.Notify(ctx, userID, db_models.NotifClassReservation,
		"Class reserved", title)
	s.activity.Record(ctx, userID, "class.reserved", map[string]any{"class_id": classID})

	return reservation, nil
}

func (s *ClassService) CancelReservation(ctx context.Context, classID string, userID uuid.UUID) error {
	id, err := uuid.Parse(classID)
	if err != nil {
		return utils.ErrClassNotFound
	}
	if err := s.classRepo.CancelReservation(ctx, id, userID); err != nil {
		return err
	}
	s.activity.Record(ctx, userID, "class.reservation_cancelled", map[string]any{"class_id": classID})
	return nil
}

func (s *ClassService) MyReservations(ctx context.Context, userID uuid.UUID) ([]db_models.ClassReservation, error) {
	reservations, err := s.classRepo.ListReservationsByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return reservations, nil
}
