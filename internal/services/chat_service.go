package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/utils"
)

const (
	EventReceiveMessage = "receive_message"
	EventMessageSent    = "message_sent"
)

// RoomPusher delivers an event to every live connection in a user's room.
// Delivery is best-effort and at-most-once; there is no offline queue.
type RoomPusher interface {
	Push(userID string, event string, payload interface{})
}

// ChatServiceInterface is the single message-send path. The REST handler and
// the websocket event handler both go through SendMessage, so persistence,
// notification and fan-out cannot diverge between transports.
type ChatServiceInterface interface {
	SendMessage(ctx context.Context, senderID uuid.UUID, receiverID uuid.UUID, content string) (*db_models.Message, error)
	Conversation(ctx context.Context, userID uuid.UUID, peerID uuid.UUID, page, limit int) ([]db_models.Message, int64, error)
}

type ChatService struct {
	messageRepo  repositories.MessageRepository
	userRepo     repositories.UserRepository
	notification NotificationServiceInterface
	pusher       RoomPusher
	logger       *zap.Logger
}

func NewChatService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notification NotificationServiceInterface,
	pusher RoomPusher,
	logger *zap.Logger,
) ChatServiceInterface {
	return &ChatService{
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		notification: notification,
		pusher:       pusher,
		logger:       logger,
	}
}

func (s *ChatService) SendMessage(ctx context.Context, senderID uuid.UUID, receiverID uuid.UUID, content string) (*db_models.Message, error) {
	sender, err := s.userRepo.FindByID(ctx, senderID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sender == nil {
		return nil, utils.ErrAccountNotFound
	}
	receiver, err := s.userRepo.FindByID(ctx, receiverID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if receiver == nil {
		return nil, utils.ErrReceiverNotFound
	}

	message := &db_models.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		SenderRole: sender.Role,
		Content:    content,
	}
	if err := s.messageRepo.Insert(ctx, message); err != nil {
		s.logger.Error("message insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.notification.Notify(ctx, receiver.ID, db_models.NotifChatMessage,
		"New message from "+sender.Name, content)

	s.pusher.Push(receiver.ID.String(), EventReceiveMessage, message)
	s.pusher.Push(sender.ID.String(), EventMessageSent, message)

	return message, nil
}

func (s *ChatService) Conversation(ctx context.Context, userID uuid.UUID, peerID uuid.UUID, page, limit int) ([]db_models.Message, int64, error) {
	messages, total, err := s.messageRepo.Conversation(ctx, userID, peerID, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return messages, total, nil
}
