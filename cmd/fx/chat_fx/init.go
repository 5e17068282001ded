package chat_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitcore/internal/chat"
	"fitcore/internal/repositories"
	"fitcore/internal/services"
)

var Module = fx.Provide(
	provideMessageRepo,
	provideHub,
	provideRoomPusher,
	provideChatService,
)

func provideMessageRepo(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideHub(logger *zap.Logger) *chat.Hub {
	return chat.NewHub(logger)
}

func provideRoomPusher(hub *chat.Hub) services.RoomPusher {
	return hub
}

func provideChatService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notification services.NotificationServiceInterface,
	pusher services.RoomPusher,
	logger *zap.Logger,
) services.ChatServiceInterface {
	return services.NewChatService(messageRepo, userRepo, notification, pusher, logger)
}
