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

type DietServiceInterface interface {
	CreatePlan(ctx context.Context, coachID uuid.UUID, req request_models.UpsertDietPlanRequest) (*db_models.DietPlan, error)
	UpdatePlan(ctx context.Context, planID string, req request_models.UpsertDietPlanRequest) (*db_models.DietPlan, error)
	DeletePlan(ctx context.Context, planID string) error
	ListPlans(ctx context.Context, page, limit int) ([]db_models.DietPlan, int64, error)

	Assign(ctx context.Context, coachID uuid.UUID, req request_models.AssignPlanRequest) (*db_models.UserDietPlan, error)
	UpdateAssignment(ctx context.Context, userID uuid.UUID, assignmentID string, req request_models.UpdateAssignmentRequest) (*db_models.UserDietPlan, error)
	MyAssignments(ctx context.Context, userID uuid.UUID) ([]db_models.UserDietPlan, error)
}

type DietService struct {
	dietRepo     repositories.DietRepository
	notification NotificationServiceInterface
	logger       *zap.Logger
}

func NewDietService(dietRepo repositories.DietRepository, notification NotificationServiceInterface, logger *zap.Logger) DietServiceInterface {
	return &DietService{
		dietRepo:     dietRepo,
		notification: notification,
		logger:       logger,
	}
}

func (s *DietService) CreatePlan(ctx context.Context, coachID uuid.UUID, req request_models.UpsertDietPlanRequest) (*db_models.DietPlan, error) {
	plan := &db_models.DietPlan{
		Title:       req.Title,
		Description: req.Description,
		CoachID:     coachID,
		Meals:       jsonOrEmptyArray(req.Meals),
	}
	if err := s.dietRepo.InsertPlan(ctx, plan); err != nil {
		s.logger.Error("diet plan create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (s *DietService) UpdatePlan(ctx context.Context, planID string, req request_models.UpsertDietPlanRequest) (*db_models.DietPlan, error) {
	plan, err := s.dietRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}

	plan.Title = req.Title
	plan.Description = req.Description
	if len(req.Meals) > 0 {
		plan.Meals = datatypes.JSON(req.Meals)
	}
	if err := s.dietRepo.UpdatePlan(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (s *DietService) DeletePlan(ctx context.Context, planID string) error {
	plan, err := s.dietRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrRecordNotFound
	}
	return s.dietRepo.DeletePlan(ctx, planID)
}

func (s *DietService) ListPlans(ctx context.Context, page, limit int) ([]db_models.DietPlan, int64, error) {
	plans, total, err := s.dietRepo.ListPlans(ctx, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return plans, total, nil
}

func (s *DietService) Assign(ctx context.Context, coachID uuid.UUID, req request_models.AssignPlanRequest) (*db_models.UserDietPlan, error) {
	plan, err := s.dietRepo.FindPlanByID(ctx, req.PlanID)
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

	assignment := &db_models.UserDietPlan{
		PlanID:     plan.ID,
		UserID:     userID,
		AssignedBy: coachID,
		Status:     db_models.AssignmentActive,
		Notes:      req.Notes,
	}
	if err := s.dietRepo.InsertAssignment(ctx, assignment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.notification.Notify(ctx, userID, db_models.NotifDietAssigned,
		"New diet plan assigned", plan.Title)
	return assignment, nil
}

func (s *DietService) UpdateAssignment(ctx context.Context, userID uuid.UUID, assignmentID string, req request_models.UpdateAssignmentRequest) (*db_models.UserDietPlan, error) {
	assignment, err := s.dietRepo.FindAssignmentByID(ctx, assignmentID)
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
	if req.Notes != "" {
		assignment.Notes = req.Notes
	}
	if err := s.dietRepo.UpdateAssignment(ctx, assignment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return assignment, nil
}

func (s *DietService) MyAssignments(ctx context.Context, userID uuid.UUID) ([]db_models.UserDietPlan, error) {
	out, err := s.dietRepo.ListAssignmentsByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return out, nil
}
