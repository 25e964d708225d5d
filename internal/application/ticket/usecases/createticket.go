package usecases

import (
	"context"
	"time"

	"cordwain/internal/domain/ticket"
	vo "cordwain/internal/domain/ticket/valueobjects"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

type CreateTicketCommand struct {
	OrderID    uint
	PositionID *uint
	ViewKey    *string
	Title      string
	Priority   string
	CreatorID  uint
}

type CreateTicketResult struct {
	TicketID  uint
	Scope     string
	Status    string
	CreatedAt time.Time
	Ticket    *ticket.Ticket
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	notifier   TicketNotifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	notifier TicketNotifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "order_id", cmd.OrderID, "title", cmd.Title, "creator_id", cmd.CreatorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	scope, err := vo.NewScope(cmd.OrderID, cmd.PositionID, cmd.ViewKey)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := ticket.NewTicket(scope, cmd.Title, vo.Priority(cmd.Priority), cmd.CreatorID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyTicketCreated(ctx, newTicket); err != nil {
			// Notification is best effort; the ticket is already saved.
			uc.logger.Warnw("failed to send ticket notification", "ticket_id", newTicket.ID(), "error", err)
		}
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "scope", scope.String())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Scope:     scope.String(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
		Ticket:    newTicket,
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.OrderID == 0 {
		return errors.NewValidationError("order ID is required")
	}

	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}

	if cmd.CreatorID == 0 {
		return errors.NewValidationError("creator ID is required")
	}

	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	if cmd.ViewKey != nil && cmd.PositionID == nil {
		return errors.NewValidationError("view-scoped tickets require a position")
	}

	return nil
}
