package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/internal/models/response_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/authz"
	"fitcore/pkg/memcache"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*db_models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req request_models.ChangePasswordRequest) error

	ForgotPassword(ctx context.Context, email string) error
	VerifyOtpToken(ctx context.Context, token string) error
	ResetPasswordWithOtp(ctx context.Context, req request_models.ResetPasswordRequest) error

	ListUsers(ctx context.Context, page, limit int) ([]db_models.User, int64, error)
	ChangeRole(ctx context.Context, actorID uuid.UUID, userID string, role string) error
	DeleteUser(ctx context.Context, actorID uuid.UUID, userID string) error
	AssignCoach(ctx context.Context, actorID uuid.UUID, userID string, coachID string) error
	ListClients(ctx context.Context, coachID uuid.UUID) ([]db_models.User, error)

	// Resolve implements middleware.IdentityResolver.
	Resolve(ctx context.Context, userID string) (*middleware.Identity, error)
}

type AccountService struct {
	userRepo    repositories.UserRepository
	accessSvc   AccessServiceInterface
	mailService IMailService
	resetTokens memcache.ResetTokenStore
	activity    ActivityServiceInterface
	logger      *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	accessSvc AccessServiceInterface,
	mailService IMailService,
	resetTokens memcache.ResetTokenStore,
	activity ActivityServiceInterface,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo:    userRepo,
		accessSvc:   accessSvc,
		mailService: mailService,
		resetTokens: resetTokens,
		activity:    activity,
		logger:      logger,
	}
}

func (a *AccountService) Register(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		a.logger.Error("register: email lookup failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         string(authz.RoleUser),
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		a.logger.Error("register: insert failed", zap.Error(err))
		return utils.ErrDatabaseError
	}

	a.activity.Record(ctx, user.ID, "account.registered", map[string]any{"email": user.Email})
	return nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		a.logger.Error("login: email lookup failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		a.logger.Error("login: token creation failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	tier, err := a.accessSvc.ResolveTier(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	a.activity.Record(ctx, user.ID, "account.login", nil)
	return &response_models.LoginResponse{
		Token: token,
		Tier:  string(tier),
		Role:  user.Role,
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, userID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	return user, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, req request_models.UpdateProfileRequest) (*db_models.User, error) {
	user, err := a.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.AvatarPath != "" {
		user.AvatarPath = req.AvatarPath
	}
	if err := a.userRepo.Update(ctx, user); err != nil {
		a.logger.Error("update profile failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (a *AccountService) ChangePassword(ctx context.Context, userID uuid.UUID, req request_models.ChangePasswordRequest) error {
	user, err := a.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.CurrentPassword); err != nil {
		return utils.ErrInvalidCredentials
	}
	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	user.PasswordHash = hashed
	if err := a.userRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	a.activity.Record(ctx, userID, "account.password_changed", nil)
	return nil
}

// ForgotPassword always reports success to the caller; whether the email
// exists is never revealed.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		a.logger.Error("forgot password: lookup failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if user == nil {
		return nil
	}

	otp, err := utils.GenerateOtpCode(6)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.resetTokens.Set(ctx, otp, user.Email, resetTokenTTL); err != nil {
		a.logger.Error("forgot password: token store failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if err := a.mailService.SendResetCode(user.Email, otp); err != nil {
		a.logger.Error("forgot password: mail send failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) VerifyOtpToken(ctx context.Context, token string) error {
	email, err := a.resetTokens.Peek(ctx, token)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if email == "" {
		return utils.ErrInvalidOtpToken
	}
	return nil
}

func (a *AccountService) ResetPasswordWithOtp(ctx context.Context, req request_models.ResetPasswordRequest) error {
	email, err := a.resetTokens.Consume(ctx, req.Token)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if email == "" {
		return utils.ErrInvalidOtpToken
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	user.PasswordHash = hashed
	if err := a.userRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	a.activity.Record(ctx, user.ID, "account.password_reset", nil)
	return nil
}

func (a *AccountService) ListUsers(ctx context.Context, page, limit int) ([]db_models.User, int64, error) {
	users, total, err := a.userRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return users, total, nil
}

func (a *AccountService) ChangeRole(ctx context.Context, actorID uuid.UUID, userID string, role string) error {
	if !authz.ValidRole(role) {
		return utils.ErrRecordNotFound
	}
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}
	user.Role = role
	if err := a.userRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	a.activity.Record(ctx, actorID, "account.role_changed", map[string]any{
		"user_id": userID,
		"role":    role,
	})
	return nil
}

func (a *AccountService) DeleteUser(ctx context.Context, actorID uuid.UUID, userID string) error {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}
	if err := a.userRepo.Delete(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}
	a.activity.Record(ctx, actorID, "account.deleted", map[string]any{"user_id": userID})
	return nil
}

func (a *AccountService) AssignCoach(ctx context.Context, actorID uuid.UUID, userID string, coachID string) error {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}
	coach, err := a.userRepo.FindByID(ctx, coachID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if coach == nil {
		return utils.ErrAccountNotFound
	}
	if coach.Role != string(authz.RoleCoach) {
		return utils.ErrCoachRequired
	}

	user.CoachID = &coach.ID
	if err := a.userRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	a.activity.Record(ctx, actorID, "account.coach_assigned", map[string]any{
		"user_id":  userID,
		"coach_id": coachID,
	})
	return nil
}

func (a *AccountService) ListClients(ctx context.Context, coachID uuid.UUID) ([]db_models.User, error) {
	users, err := a.userRepo.ListByCoach(ctx, coachID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}

func (a *AccountService) Resolve(ctx context.Context, userID string) (*middleware.Identity, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &middleware.Identity{
		ID:    user.ID,
		Role:  authz.Role(user.Role),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
