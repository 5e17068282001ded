package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type MessageRepository interface {
	Insert(ctx context.Context, message *db_models.Message) error
	// Conversation returns messages exchanged between two users, oldest
	// first within the requested page.
	Conversation(ctx context.Context, a, b uuid.UUID, page, limit int) ([]db_models.Message, int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Insert(ctx context.Context, message *db_models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) Conversation(ctx context.Context, a, b uuid.UUID, page, limit int) ([]db_models.Message, int64, error) {
	var messages []db_models.Message
	var total int64

	cond := "(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)"
	base := r.db.WithContext(ctx).Model(&db_models.Message{}).Where(cond, a, b, b, a)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.
		Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}
