package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/internal/repositories"
	"fitcore/pkg/authz"
	"fitcore/pkg/utils"
)

type TicketServiceInterface interface {
	Open(ctx context.Context, userID uuid.UUID, req request_models.CreateTicketRequest) (*db_models.Ticket, error)
	Get(ctx context.Context, ticketID string, actorID uuid.UUID, actorRole authz.Role) (*db_models.Ticket, error)
	MyTickets(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Ticket, int64, error)
	AllTickets(ctx context.Context, page, limit int) ([]db_models.Ticket, int64, error)
	Reply(ctx context.Context, ticketID string, authorID uuid.UUID, actorRole authz.Role, req request_models.TicketReplyRequest) (*db_models.TicketReply, error)
	Close(ctx context.Context, ticketID string) error
}

type TicketService struct {
	ticketRepo   repositories.TicketRepository
	notification NotificationServiceInterface
	logger       *zap.Logger
}

func NewTicketService(ticketRepo repositories.TicketRepository, notification NotificationServiceInterface, logger *zap.Logger) TicketServiceInterface {
	return &TicketService{
		ticketRepo:   ticketRepo,
		notification: notification,
		logger:       logger,
	}
}

func (s *TicketService) Open(ctx context.Context, userID uuid.UUID, req request_models.CreateTicketRequest) (*db_models.Ticket, error) {
	ticket := &db_models.Ticket{
		UserID:  userID,
		Subject: req.Subject,
		Body:    req.Body,
		Status:  db_models.TicketOpen,
	}
	if err := s.ticketRepo.Insert(ctx, ticket); err != nil {
		s.logger.Error("ticket create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return ticket, nil
}

// Get returns the ticket with replies. Regular users can only read their own
// tickets; admins read any.
func (s *TicketService) Get(ctx context.Context, ticketID string, actorID uuid.UUID, actorRole authz.Role) (*db_models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if ticket == nil {
		return nil, utils.ErrTicketNotFound
	}
	if ticket.UserID != actorID && actorRole != authz.RoleAdmin {
		return nil, utils.ErrNotOwner
	}
	return ticket, nil
}

func (s *TicketService) MyTickets(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.Ticket, int64, error) {
	tickets, total, err := s.ticketRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return tickets, total, nil
}

func (s *TicketService) AllTickets(ctx context.Context, page, limit int) ([]db_models.Ticket, int64, error) {
	tickets, total, err := s.ticketRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return tickets, total, nil
}

func (s *TicketService) Reply(ctx context.Context, ticketID string, authorID uuid.UUID, actorRole authz.Role, req request_models.TicketReplyRequest) (*db_models.TicketReply, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if ticket == nil {
		return nil, utils.ErrTicketNotFound
	}
	if ticket.Status == db_models.TicketClosed {
		return nil, utils.ErrTicketClosed
	}
	if ticket.UserID != authorID && actorRole != authz.RoleAdmin {
		return nil, utils.ErrNotOwner
	}

	reply := &db_models.TicketReply{
		TicketID: ticket.ID,
		AuthorID: authorID,
		Body:     req.Body,
	}
	if err := s.ticketRepo.InsertReply(ctx, reply); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Notify the other side of the thread.
	if authorID != ticket.UserID {
		s.notification.Notify(ctx, ticket.UserID, db_models.NotifTicketReply,
			"Reply on ticket: "+ticket.Subject, req.Body)
	}
	return reply, nil
}

func (s *TicketService) Close(ctx context.Context, ticketID string) error {
	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if ticket == nil {
		return utils.ErrTicketNotFound
	}
	if ticket.Status == db_models.TicketClosed {
		return nil
	}
	ticket.Status = db_models.TicketClosed
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
