package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

type WorkoutServiceInterface interface {
	CreatePlan(ctx context.Context, coachID uuid.UUID, req request_models.UpsertWorkoutPlanRequest) (*db_models.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, planID string, req request_models.UpsertWorkoutPlanRequest) (*db_models.WorkoutPlan, error)
	DeletePlan(ctx context.Context, planID string) error
	ListPlans(ctx context.Context, page, limit int) ([]db_models.WorkoutPlan, int64, error)

	Assign(ctx context.Context, coachID uuid.UUID, req request_models.AssignPlanRequest) (*db_models.UserWorkout, error)
	UpdateAssignment(ctx context.Context, userID uuid.UUID, assignmentID string, req request_models.UpdateAssignmentRequest) (*db_models.UserWorkout, error)
	MyAssignments(ctx context.Context, userID uuid.UUID) ([]db_models.UserWorkout, error)
	ClientAssignments(ctx context.Context, clientID string) ([]db_models.UserWorkout, error)
}

type WorkoutService struct {
	workoutRepo  repositories.WorkoutRepository
	notification NotificationServiceInterface
	logger       *zap.Logger
}

func NewWorkoutService(workoutRepo repositories.WorkoutRepository, notification NotificationServiceInterface, logger *zap.Logger) WorkoutServiceInterface {
	return &WorkoutService{
		workoutRepo:  workoutRepo,
		notification: notification,
		logger:       logger,
	}
}

func jsonOrEmptyArray(raw []byte) datatypes.JSON {
	if len(raw) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

func (s *WorkoutService) CreatePlan(ctx context.Context, coachID uuid.UUID, req request_models.UpsertWorkoutPlanRequest) (*db_models.WorkoutPlan, error) {
	plan := &db_models.WorkoutPlan{
		Title:       req.Title,
		Description: req.Description,
		CoachID:     coachID,
		Entries:     jsonOrEmptyArray(req.Entries),
	}
	if err := s.workoutRepo.InsertPlan(ctx, plan); err != nil {
		s.logger.Error("workout plan create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (s *WorkoutService) UpdatePlan(ctx context.Context, planID string, req request_models.UpsertWorkoutPlanRequest) (*db_models.WorkoutPlan, error) {
	plan, err := s.workoutRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}

	plan.Title = req.Title
	plan.Description = req.Description
	if len(req.Entries) > 0 {
		plan.Entries = datatypes.JSON(req.Entries)
	}
	if err := s.workoutRepo.UpdatePlan(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (s *WorkoutService) DeletePlan(ctx context.Context, planID string) error {
	plan, err := s.workoutRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrRecordNotFound
	}
	return s.workoutRepo.DeletePlan(ctx, planID)
}

func (s *WorkoutService) ListPlans(ctx context.Context, page, limit int) ([]db_models.WorkoutPlan, int64, error) {
	plans, total, err := s.workoutRepo.ListPlans(ctx, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return plans, total, nil
}

func (s *WorkoutService) Assign(ctx context.Context, coachID uuid.UUID, req request_models.AssignPlanRequest) (*db_models.UserWorkout, error) {
	plan, err := s.workoutRepo.FindPlanByID(ctx, req.PlanID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	assignment := &db_models.UserWorkout{
		PlanID:     plan.ID,
		UserID:     userID,
		AssignedBy: coachID,
		Status:     db_models.AssignmentActive,
		Notes:      req.Notes,
	}
	if err := s.workoutRepo.InsertAssignment(ctx, assignment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.notification.Notify(ctx, userID, db_models.NotifWorkoutAssigned,
		"New workout plan assigned", plan.Title)
	return assignment, nil
}

func (s *WorkoutService) UpdateAssignment(ctx context.Context, userID uuid.UUID, assignmentID string, req request_models.UpdateAssignmentRequest) (*db_models.UserWorkout, error) {
	assignment, err := s.workoutRepo.FindAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if assignment == nil {
		return nil, utils.ErrRecordNotFound
	}
	if assignment.UserID != userID {
		return nil, utils.ErrNotOwner
	}

	if req.Status != "" {
		assignment.Status = db_models.AssignmentStatus(req.Status)
	}
	if req.Progress != nil {
		assignment.Progress = *req.Progress
	}
	if req.Notes != "" {
		assignment.Notes = req.Notes
	}
	if err := s.workoutRepo.UpdateAssignment(ctx, assignment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return assignment, nil
}

func (s *WorkoutService) MyAssignments(ctx context.Context, userID uuid.UUID) ([]db_models.UserWorkout, error) {
	out, err := s.workoutRepo.ListAssignmentsByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return out, nil
}

func (s *WorkoutService) ClientAssignments(ctx context.Context, clientID string) ([]db_models.UserWorkout, error) {
	id, err := uuid.Parse(clientID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}
	out, err := s.workoutRepo.ListAssignmentsByUser(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return out, nil
}
