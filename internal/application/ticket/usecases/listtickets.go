package usecases

import (
	"context"

	"cordwain/internal/domain/ticket"
	vo "cordwain/internal/domain/ticket/valueobjects"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

type ListTicketsQuery struct {
	OrderID    *uint
	PositionID *uint
	Status     *string
	Priority   *string
}

type ListTicketsResult struct {
	Tickets []*ticket.Ticket
	Total   int
}

type ListTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		OrderID:    query.OrderID,
		PositionID: query.PositionID,
	}

	if query.Status != nil {
		status := vo.TicketStatus(*query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	if query.Priority != nil {
		priority := vo.Priority(*query.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	for _, t := range tickets {
		comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
		if err != nil {
			uc.logger.Errorw("failed to load comments", "ticket_id", t.ID(), "error", err)
			return nil, errors.NewInternalError("failed to load comments")
		}
		t.SetComments(comments)
	}

	return &ListTicketsResult{
		Tickets: tickets,
		Total:   len(tickets),
	}, nil
}
