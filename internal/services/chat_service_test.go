package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/pkg/utils"
)

func chatUsers() (*db_models.User, *db_models.User) {
	sender := &db_models.User{Name: "Coach Dana", Role: "coach"}
	sender.ID = uuid.New()
	receiver := &db_models.User{Name: "Sam", Role: "user"}
	receiver.ID = uuid.New()
	return sender, receiver
}

func userLookup(users ...*db_models.User) func(ctx context.Context, id string) (*db_models.User, error) {
	return func(ctx context.Context, id string) (*db_models.User, error) {
		for _, u := range users {
			if u.ID.String() == id {
				return u, nil
			}
		}
		return nil, nil
	}
}

func TestSendMessagePersistsNotifiesAndPushesBothRooms(t *testing.T) {
	sender, receiver := chatUsers()

	var saved *db_models.Message
	messageRepo := &fakeMessageRepo{
		InsertFn: func(ctx context.Context, message *db_models.Message) error {
			saved = message
			return nil
		},
	}
	userRepo := &fakeUserRepo{FindByIDFn: userLookup(sender, receiver)}
	notifier := &fakeNotifier{}
	pusher := &fakePusher{}

	svc := &ChatService{
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		notification: notifier,
		pusher:       pusher,
		logger:       zap.NewNop(),
	}

	message, err := svc.SendMessage(context.Background(), sender.ID, receiver.ID, "see you at 6")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "see you at 6", saved.Content)

	// Sender role comes from the account record, not from the request.
	assert.Equal(t, "coach", message.SenderRole)

	require.Len(t, notifier.Sent, 1)
	assert.Equal(t, receiver.ID, notifier.Sent[0].UserID)
	assert.Equal(t, db_models.NotifChatMessage, notifier.Sent[0].Type)

	require.Len(t, pusher.Pushed, 2)
	assert.Equal(t, receiver.ID.String(), pusher.Pushed[0].UserID)
	assert.Equal(t, EventReceiveMessage, pusher.Pushed[0].Event)
	assert.Equal(t, sender.ID.String(), pusher.Pushed[1].UserID)
	assert.Equal(t, EventMessageSent, pusher.Pushed[1].Event)
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	sender, _ := chatUsers()

	userRepo := &fakeUserRepo{FindByIDFn: userLookup(sender)}
	svc := &ChatService{
		messageRepo:  &fakeMessageRepo{},
		userRepo:     userRepo,
		notification: &fakeNotifier{},
		pusher:       &fakePusher{},
		logger:       zap.NewNop(),
	}

	_, err := svc.SendMessage(context.Background(), sender.ID, uuid.New(), "hello?")
	assert.ErrorIs(t, err, utils.ErrReceiverNotFound)
}

func TestSendMessageVanishedSender(t *testing.T) {
	_, receiver := chatUsers()

	userRepo := &fakeUserRepo{FindByIDFn: userLookup(receiver)}
	svc := &ChatService{
		messageRepo:  &fakeMessageRepo{},
		userRepo:     userRepo,
		notification: &fakeNotifier{},
		pusher:       &fakePusher{},
		logger:       zap.NewNop(),
	}

	_, err := svc.SendMessage(context.Background(), uuid.New(), receiver.ID, "hello?")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestConversationDelegatesToRepository(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	messageRepo := &fakeMessageRepo{
		ConversationFn: func(ctx context.Context, x, y uuid.UUID, page, limit int) ([]db_models.Message, int64, error) {
			assert.Equal(t, a, x)
			assert.Equal(t, b, y)
			return []db_models.Message{{Content: "hi"}}, 1, nil
		},
	}
	svc := &ChatService{
		messageRepo: messageRepo,
		logger:      zap.NewNop(),
	}

	messages, total, err := svc.Conversation(context.Background(), a, b, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, messages, 1)
	assert.Equal(t, "hi", messages[0].Content)
}
