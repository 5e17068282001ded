package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/pkg/memcache"
	"fitcore/pkg/utils"
)

type accountFixture struct {
	userRepo *fakeUserRepo
	access   *fakeSubscriptionRepo
	mail     *fakeMailService
	tokens   *memcache.MemoryResetTokens
	activity *fakeActivity
	svc      *AccountService
}

func newAccountFixture(userRepo *fakeUserRepo) *accountFixture {
	access := &fakeSubscriptionRepo{
		FindActiveByUserFn: func(ctx context.Context, userID uuid.UUID, now int64) (*db_models.Subscription, error) {
			return nil, nil
		},
	}
	mail := &fakeMailService{}
	tokens := memcache.NewMemoryResetTokens()
	activity := &fakeActivity{}
	svc := &AccountService{
		userRepo:    userRepo,
		accessSvc:   newAccessService(access, 1_700_000_000),
		mailService: mail,
		resetTokens: tokens,
		activity:    activity,
		logger:      zap.NewNop(),
	}
	return &accountFixture{userRepo: userRepo, access: access, mail: mail, tokens: tokens, activity: activity, svc: svc}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	userRepo := &fakeUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*db_models.User, error) {
			return &db_models.User{Email: email}, nil
		},
	}
	f := newAccountFixture(userRepo)

	err := f.svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "Sam Doe",
		Email:    "sam@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	assert.Empty(t, f.activity.Recorded)
}

func TestRegisterHashesPasswordAndDefaultsToUserRole(t *testing.T) {
	var inserted *db_models.User
	userRepo := &fakeUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*db_models.User, error) {
			return nil, nil
		},
		InsertFn: func(ctx context.Context, user *db_models.User) error {
			inserted = user
			return nil
		},
	}
	f := newAccountFixture(userRepo)

	err := f.svc.Register(context.Background(), request_models.SignUpRequest{
		Name:     "Sam Doe",
		Email:    "sam@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotNil(t, inserted)

	assert.Equal(t, "user", inserted.Role)
	assert.NotEqual(t, "hunter22", inserted.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(inserted.PasswordHash, "hunter22"))

	require.Len(t, f.activity.Recorded, 1)
	assert.Equal(t, "account.registered", f.activity.Recorded[0].Action)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := utils.HashPassword("right-password")
	require.NoError(t, err)

	userRepo := &fakeUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*db_models.User, error) {
			return &db_models.User{Email: email, PasswordHash: hashed, Role: "user"}, nil
		},
	}
	f := newAccountFixture(userRepo)

	_, err = f.svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "sam@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmailLooksLikeWrongPassword(t *testing.T) {
	userRepo := &fakeUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*db_models.User, error) {
			return nil, nil
		},
	}
	f := newAccountFixture(userRepo)

	_, err := f.svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginReturnsTokenRoleAndTier(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, err := utils.HashPassword("hunter22")
	require.NoError(t, err)
	user := &db_models.User{Email: "sam@example.com", PasswordHash: hashed, Role: "user"}
	user.ID = uuid.New()

	userRepo := &fakeUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*db_models.User, error) {
			return user, nil
		},
	}
	f := newAccountFixture(userRepo)
	f.access.FindActiveByUserFn = func(ctx context.Context, userID uuid.UUID, now int64) (*db_models.Subscription, error) {
		return &db_models.Subscription{PlanCode: db_models.TierGold}, nil
	}

	resp, err := f.svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "sam@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", resp.Role)
	assert.Equal(t, "gold", resp.Tier)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestForgotPasswordSilentOnUnknownEmail(t *testing.T) {
	userRepo := &fakeUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*db_models.User, error) {
			return nil, nil
		},
	}
	f := newAccountFixture(userRepo)

	err := f.svc.ForgotPassword(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, f.mail.ResetCodes)
}

func TestForgotPasswordStoresOtpAndMailsIt(t *testing.T) {
	userRepo := &fakeUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*db_models.User, error) {
			return &db_models.User{Email: email}, nil
		},
	}
	f := newAccountFixture(userRepo)

	err := f.svc.ForgotPassword(context.Background(), "sam@example.com")
	require.NoError(t, err)

	require.Len(t, f.mail.ResetCodes, 1)
	assert.Equal(t, "sam@example.com", f.mail.ResetTo[0])
	code := f.mail.ResetCodes[0]
	assert.Len(t, code, 6)

	// The mailed code verifies against the token store.
	assert.NoError(t, f.svc.VerifyOtpToken(context.Background(), code))
}

func TestResetPasswordConsumesOtp(t *testing.T) {
	user := &db_models.User{Email: "sam@example.com", PasswordHash: "old-hash"}
	user.ID = uuid.New()
	userRepo := &fakeUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*db_models.User, error) {
			return user, nil
		},
		UpdateFn: func(ctx context.Context, u *db_models.User) error { return nil },
	}
	f := newAccountFixture(userRepo)

	require.NoError(t, f.svc.ForgotPassword(context.Background(), "sam@example.com"))
	code := f.mail.ResetCodes[0]

	err := f.svc.ResetPasswordWithOtp(context.Background(), request_models.ResetPasswordRequest{
		Token:       code,
		NewPassword: "new-password",
	})
	require.NoError(t, err)
	assert.NoError(t, utils.ComparePasswords(user.PasswordHash, "new-password"))

	// Consumed codes are single use.
	err = f.svc.ResetPasswordWithOtp(context.Background(), request_models.ResetPasswordRequest{
		Token:       code,
		NewPassword: "another-one",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidOtpToken)
}

func TestVerifyOtpTokenUnknownCode(t *testing.T) {
	f := newAccountFixture(&fakeUserRepo{})

	err := f.svc.VerifyOtpToken(context.Background(), "000000")
	assert.ErrorIs(t, err, utils.ErrInvalidOtpToken)
}

func TestAssignCoachRequiresCoachRole(t *testing.T) {
	client := &db_models.User{Role: "user"}
	client.ID = uuid.New()
	notACoach := &db_models.User{Role: "user"}
	notACoach.ID = uuid.New()

	userRepo := &fakeUserRepo{
		FindByIDFn: userLookup(client, notACoach),
	}
	f := newAccountFixture(userRepo)

	err := f.svc.AssignCoach(context.Background(), uuid.New(), client.ID.String(), notACoach.ID.String())
	assert.ErrorIs(t, err, utils.ErrCoachRequired)
}

func TestChangeRoleRejectsUnknownRole(t *testing.T) {
	f := newAccountFixture(&fakeUserRepo{})

	err := f.svc.ChangeRole(context.Background(), uuid.New(), uuid.NewString(), "superadmin")
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestResolveMissingAccountReturnsNilIdentity(t *testing.T) {
	userRepo := &fakeUserRepo{
		FindByIDFn: func(ctx context.Context, id string) (*db_models.User, error) {
			return nil, nil
		},
	}
	f := newAccountFixture(userRepo)

	identity, err := f.svc.Resolve(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, identity)
}
