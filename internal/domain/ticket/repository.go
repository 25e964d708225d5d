package ticket

import (
	"context"

	vo "cordwain/internal/domain/ticket/valueobjects"
)

// TicketRepository is the persistence port for tickets.
type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// Delete removes the ticket and cascades its comments.
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
}

// TicketFilter narrows list queries. Pointer fields are unconstrained when
// nil.
type TicketFilter struct {
	OrderID    *uint
	PositionID *uint
	Status     *vo.TicketStatus
	Priority   *vo.Priority
}

// CommentRepository is the persistence port for ticket comments.
type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	Delete(ctx context.Context, commentID uint) error
}
