package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

type TicketRepository interface {
	Insert(ctx context.Context, ticket *db_models.Ticket) error
	Update(ctx context.Context, ticket *db_models.Ticket) error
	FindByID(ctx context.Context, id string) (*db_models.Ticket, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Ticket, int64, error)
	List(ctx context.Context, page, limit int) ([]db_models.Ticket, int64, error)
	InsertReply(ctx context.Context, reply *db_models.TicketReply) error
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Insert(ctx context.Context, ticket *db_models.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepository) Update(ctx context.Context, ticket *db_models.Ticket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *ticketRepository) FindByID(ctx context.Context, id string) (*db_models.Ticket, error) {
	var ticket db_models.Ticket
	err := r.db.WithContext(ctx).Preload("Replies").First(&ticket, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Ticket, int64, error) {
	var tickets []db_models.Ticket
	var total int64

	base := r.db.WithContext(ctx).Model(&db_models.Ticket{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *ticketRepository) List(ctx context.Context, page, limit int) ([]db_models.Ticket, int64, error) {
	var tickets []db_models.Ticket
	var total int64

	if err := r.db.WithContext(ctx).Model(&db_models.Ticket{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *ticketRepository) InsertReply(ctx context.Context, reply *db_models.TicketReply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}
