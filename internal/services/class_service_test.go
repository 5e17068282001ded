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
	"fitcore/pkg/utils"
)

func classUpsertRequest(coachID uuid.UUID) request_models.UpsertClassRequest {
	return request_models.UpsertClassRequest{
		Title:       "Morning HIIT",
		CoachID:     coachID.String(),
		Capacity:    12,
		StartsAt:    1_700_000_000,
		DurationMin: 45,
	}
}

func newClassService(classRepo *fakeClassRepo, userRepo *fakeUserRepo, notifier *fakeNotifier, activity *fakeActivity) *ClassService {
	return &ClassService{
		classRepo:    classRepo,
		userRepo:     userRepo,
		notification: notifier,
		activity:     activity,
		logger:       zap.NewNop(),
	}
}

func TestReserveSuccessNotifiesAndRecords(t *testing.T) {
	classID := uuid.New()
	userID := uuid.New()

	classRepo := &fakeClassRepo{
		ReserveFn: func(ctx context.Context, cid, uid uuid.UUID) (*db_models.ClassReservation, error) {
			return &db_models.ClassReservation{ClassID: cid, UserID: uid}, nil
		},
		FindByIDFn: func(ctx context.Context, id string) (*db_models.Class, error) {
			return &db_models.Class{Title: "Morning HIIT"}, nil
		},
	}
	notifier := &fakeNotifier{}
	activity := &fakeActivity{}
	svc := newClassService(classRepo, nil, notifier, activity)

	reservation, err := svc.Reserve(context.Background(), classID.String(), userID)
	require.NoError(t, err)
	require.NotNil(t, reservation)
	assert.Equal(t, classID, reservation.ClassID)

	require.Len(t, notifier.Sent, 1)
	assert.Equal(t, userID, notifier.Sent[0].UserID)
	assert.Equal(t, db_models.NotifClassReservation, notifier.Sent[0].Type)
	assert.Equal(t, "Morning HIIT", notifier.Sent[0].Body)

	require.Len(t, activity.Recorded, 1)
	assert.Equal(t, "class.reserved", activity.Recorded[0].Action)
	assert.Equal(t, userID, activity.Recorded[0].ActorID)
}

func TestReserveFullClassPassesErrorThrough(t *testing.T) {
	classRepo := &fakeClassRepo{
		ReserveFn: func(ctx context.Context, cid, uid uuid.UUID) (*db_models.ClassReservation, error) {
			return nil, utils.ErrClassFull
		},
	}
	notifier := &fakeNotifier{}
	activity := &fakeActivity{}
	svc := newClassService(classRepo, nil, notifier, activity)

	_, err := svc.Reserve(context.Background(), uuid.NewString(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrClassFull)
	assert.Empty(t, notifier.Sent)
	assert.Empty(t, activity.Recorded)
}

func TestReserveDuplicatePassesErrorThrough(t *testing.T) {
	classRepo := &fakeClassRepo{
		ReserveFn: func(ctx context.Context, cid, uid uuid.UUID) (*db_models.ClassReservation, error) {
			return nil, utils.ErrAlreadyReserved
		},
	}
	svc := newClassService(classRepo, nil, &fakeNotifier{}, &fakeActivity{})

	_, err := svc.Reserve(context.Background(), uuid.NewString(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrAlreadyReserved)
}

func TestReserveRejectsMalformedClassID(t *testing.T) {
	svc := newClassService(&fakeClassRepo{}, nil, &fakeNotifier{}, &fakeActivity{})

	_, err := svc.Reserve(context.Background(), "not-a-uuid", uuid.New())
	assert.ErrorIs(t, err, utils.ErrClassNotFound)
}

func TestCancelReservationMissingRow(t *testing.T) {
	classRepo := &fakeClassRepo{
		CancelReservationFn: func(ctx context.Context, cid, uid uuid.UUID) error {
			return utils.ErrReservationMissing
		},
	}
	svc := newClassService(classRepo, nil, &fakeNotifier{}, &fakeActivity{})

	err := svc.CancelReservation(context.Background(), uuid.NewString(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrReservationMissing)
}

func TestCreateClassRequiresCoachRole(t *testing.T) {
	coachID := uuid.New()
	userRepo := &fakeUserRepo{
		FindByIDFn: func(ctx context.Context, id string) (*db_models.User, error) {
			return &db_models.User{Role: "user"}, nil
		},
	}
	svc := newClassService(&fakeClassRepo{}, userRepo, &fakeNotifier{}, &fakeActivity{})

	_, err := svc.Create(context.Background(), classUpsertRequest(coachID))
	assert.ErrorIs(t, err, utils.ErrCoachRequired)
}

func TestCreateClassWithCoach(t *testing.T) {
	coachID := uuid.New()
	userRepo := &fakeUserRepo{
		FindByIDFn: func(ctx context.Context, id string) (*db_models.User, error) {
			u := &db_models.User{Role: "coach"}
			u.ID = coachID
			return u, nil
		},
	}
	var inserted *db_models.Class
	classRepo := &fakeClassRepo{
		InsertFn: func(ctx context.Context, class *db_models.Class) error {
			inserted = class
			return nil
		},
	}
	svc := newClassService(classRepo, userRepo, &fakeNotifier{}, &fakeActivity{})

	class, err := svc.Create(context.Background(), classUpsertRequest(coachID))
	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, coachID, class.CoachID)
	assert.Equal(t, 12, class.Capacity)
}
