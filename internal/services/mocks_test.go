package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fitcore/internal/models/db_models"
	"fitcore/internal/repositories"
)

// Hand-rolled fakes with overridable func fields. Tests set only the calls
// they care about; unset funcs fail loudly via nil dereference.

type fakeSubscriptionRepo struct {
	FindActiveByUserFn func(ctx context.Context, userID uuid.UUID, now int64) (*db_models.Subscription, error)
	InsertFn           func(ctx context.Context, sub *db_models.Subscription) error
	UpdateFn           func(ctx context.Context, sub *db_models.Subscription) error
	ListByUserFn       func(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error)
}

func (f *fakeSubscriptionRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID, now int64) (*db_models.Subscription, error) {
	return f.FindActiveByUserFn(ctx, userID, now)
}
func (f *fakeSubscriptionRepo) Insert(ctx context.Context, sub *db_models.Subscription) error {
	return f.InsertFn(ctx, sub)
}
func (f *fakeSubscriptionRepo) Update(ctx context.Context, sub *db_models.Subscription) error {
	return f.UpdateFn(ctx, sub)
}
func (f *fakeSubscriptionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Subscription, error) {
	return f.ListByUserFn(ctx, userID)
}

type fakePlanRepo struct {
	FindByCodeFn func(ctx context.Context, code db_models.Tier) (*db_models.Plan, error)
	ListFn       func(ctx context.Context) ([]db_models.Plan, error)
	InsertFn     func(ctx context.Context, plan *db_models.Plan) error
	UpdateFn     func(ctx context.Context, plan *db_models.Plan) error
}

func (f *fakePlanRepo) FindByCode(ctx context.Context, code db_models.Tier) (*db_models.Plan, error) {
	return f.FindByCodeFn(ctx, code)
}
func (f *fakePlanRepo) List(ctx context.Context) ([]db_models.Plan, error) { return f.ListFn(ctx) }
func (f *fakePlanRepo) Insert(ctx context.Context, plan *db_models.Plan) error {
	return f.InsertFn(ctx, plan)
}
func (f *fakePlanRepo) Update(ctx context.Context, plan *db_models.Plan) error {
	return f.UpdateFn(ctx, plan)
}

type fakeUserRepo struct {
	InsertFn      func(ctx context.Context, user *db_models.User) error
	FindByIDFn    func(ctx context.Context, id string) (*db_models.User, error)
	FindByEmailFn func(ctx context.Context, email string) (*db_models.User, error)
	UpdateFn      func(ctx context.Context, user *db_models.User) error
	DeleteFn      func(ctx context.Context, id string) error
	ListFn        func(ctx context.Context, page, limit int) ([]db_models.User, int64, error)
	ListByCoachFn func(ctx context.Context, coachID uuid.UUID) ([]db_models.User, error)
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	return f.InsertFn(ctx, user)
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return f.FindByEmailFn(ctx, email)
}
func (f *fakeUserRepo) Update(ctx context.Context, user *db_models.User) error {
	return f.UpdateFn(ctx, user)
}
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return f.DeleteFn(ctx, id) }
func (f *fakeUserRepo) List(ctx context.Context, page, limit int) ([]db_models.User, int64, error) {
	return f.ListFn(ctx, page, limit)
}
func (f *fakeUserRepo) ListByCoach(ctx context.Context, coachID uuid.UUID) ([]db_models.User, error) {
	return f.ListByCoachFn(ctx, coachID)
}

type fakeClassRepo struct {
	InsertFn                 func(ctx context.Context, class *db_models.Class) error
	UpdateFn                 func(ctx context.Context, class *db_models.Class) error
	DeleteFn                 func(ctx context.Context, id string) error
	FindByIDFn               func(ctx context.Context, id string) (*db_models.Class, error)
	ListFn                   func(ctx context.Context, page, limit int) ([]db_models.Class, int64, error)
	CountReservationsFn      func(ctx context.Context, classID uuid.UUID) (int64, error)
	ReserveFn                func(ctx context.Context, classID, userID uuid.UUID) (*db_models.ClassReservation, error)
	CancelReservationFn      func(ctx context.Context, classID, userID uuid.UUID) error
	ListReservationsByUserFn func(ctx context.Context, userID uuid.UUID) ([]db_models.ClassReservation, error)
}

func (f *fakeClassRepo) Insert(ctx context.Context, class *db_models.Class) error {
	return f.InsertFn(ctx, class)
}
func (f *fakeClassRepo) Update(ctx context.Context, class *db_models.Class) error {
	return f.UpdateFn(ctx, class)
}
func (f *fakeClassRepo) Delete(ctx context.Context, id string) error { return f.DeleteFn(ctx, id) }
func (f *fakeClassRepo) FindByID(ctx context.Context, id string) (*db_models.Class, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeClassRepo) List(ctx context.Context, page, limit int) ([]db_models.Class, int64, error) {
	return f.ListFn(ctx, page, limit)
}
func (f *fakeClassRepo) CountReservations(ctx context.Context, classID uuid.UUID) (int64, error) {
	return f.CountReservationsFn(ctx, classID)
}
func (f *fakeClassRepo) Reserve(ctx context.Context, classID, userID uuid.UUID) (*db_models.ClassReservation, error) {
	return f.ReserveFn(ctx, classID, userID)
}
func (f *fakeClassRepo) CancelReservation(ctx context.Context, classID, userID uuid.UUID) error {
	return f.CancelReservationFn(ctx, classID, userID)
}
func (f *fakeClassRepo) ListReservationsByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ClassReservation, error) {
	return f.ListReservationsByUserFn(ctx, userID)
}

type fakeMessageRepo struct {
	InsertFn       func(ctx context.Context, message *db_models.Message) error
	ConversationFn func(ctx context.Context, a, b uuid.UUID, page, limit int) ([]db_models.Message, int64, error)
}

func (f *fakeMessageRepo) Insert(ctx context.Context, message *db_models.Message) error {
	return f.InsertFn(ctx, message)
}
func (f *fakeMessageRepo) Conversation(ctx context.Context, a, b uuid.UUID, page, limit int) ([]db_models.Message, int64, error) {
	return f.ConversationFn(ctx, a, b, page, limit)
}

// recordedNotification captures a Notify call.
type recordedNotification struct {
	UserID uuid.UUID
	Type   db_models.NotificationType
	Title  string
	Body   string
}

type fakeNotifier struct {
	Sent []recordedNotification
}

func (f *fakeNotifier) Notify(ctx context.Context, userID uuid.UUID, typ db_models.NotificationType, title, body string) {
	f.Sent = append(f.Sent, recordedNotification{UserID: userID, Type: typ, Title: title, Body: body})
}
func (f *fakeNotifier) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, limit int) ([]db_models.Notification, int64, error) {
	return nil, 0, nil
}
func (f *fakeNotifier) MarkRead(ctx context.Context, userID uuid.UUID, notificationID string) error {
	return nil
}
func (f *fakeNotifier) MarkAllRead(ctx context.Context, userID uuid.UUID) error { return nil }

type recordedActivity struct {
	ActorID  uuid.UUID
	Action   string
	Metadata map[string]any
}

type fakeActivity struct {
	Recorded []recordedActivity
}

func (f *fakeActivity) Record(ctx context.Context, actorID uuid.UUID, action string, metadata map[string]any) {
	f.Recorded = append(f.Recorded, recordedActivity{ActorID: actorID, Action: action, Metadata: metadata})
}
func (f *fakeActivity) List(ctx context.Context, page, limit int) ([]db_models.ActivityLog, int64, error) {
	return nil, 0, nil
}

type pushedFrame struct {
	UserID  string
	Event   string
	Payload interface{}
}

type fakePusher struct {
	Pushed []pushedFrame
}

func (f *fakePusher) Push(userID string, event string, payload interface{}) {
	f.Pushed = append(f.Pushed, pushedFrame{UserID: userID, Event: event, Payload: payload})
}

type fakeMailService struct {
	ResetCodes []string
	ResetTo    []string
}

func (f *fakeMailService) SendResetCode(to, code string) error {
	f.ResetTo = append(f.ResetTo, to)
	f.ResetCodes = append(f.ResetCodes, code)
	return nil
}
func (f *fakeMailService) SendNotice(to, subject, body string) error { return nil }

type fakePaymentRecorder struct {
	Payments []*db_models.Payment
}

func (f *fakePaymentRecorder) RecordPayment(ctx context.Context, payment *db_models.Payment) error {
	f.Payments = append(f.Payments, payment)
	return nil
}

// interface conformance
var (
	_ repositories.SubscriptionRepository = (*fakeSubscriptionRepo)(nil)
	_ repositories.PlanRepository         = (*fakePlanRepo)(nil)
	_ repositories.UserRepository         = (*fakeUserRepo)(nil)
	_ repositories.ClassRepository        = (*fakeClassRepo)(nil)
	_ repositories.MessageRepository      = (*fakeMessageRepo)(nil)
	_ NotificationServiceInterface        = (*fakeNotifier)(nil)
	_ ActivityServiceInterface            = (*fakeActivity)(nil)
	_ RoomPusher                          = (*fakePusher)(nil)
	_ IMailService                        = (*fakeMailService)(nil)
	_ PaymentRecorder                     = (*fakePaymentRecorder)(nil)
)

func fixedNow(ts int64) func() time.Time {
	return func() time.Time { return time.Unix(ts, 0) }
}
