package services

import (
	"context"

	"cordwain/internal/application/review"
	"cordwain/internal/domain/ticket"
)

// GatingService evaluates the resolve-gating rule against the ticket
// store. It satisfies usecases.OpenTicketCounter.
type GatingService struct {
	ticketRepo ticket.TicketRepository
}

func NewGatingService(ticketRepo ticket.TicketRepository) *GatingService {
	return &GatingService{ticketRepo: ticketRepo}
}

// CountOpenForView counts the open tickets scoped to exactly this view.
// Position-level and order-level tickets never block a view.
func (s *GatingService) CountOpenForView(ctx context.Context, orderID, positionID uint, viewKey string) (int, error) {
	tickets, err := s.ticketRepo.List(ctx, ticket.TicketFilter{
		OrderID:    &orderID,
		PositionID: &positionID,
	})
	if err != nil {
		return 0, err
	}
	return review.OpenTicketCount(tickets, orderID, positionID, viewKey), nil
}
