package usecases

import (
	"context"

	"cordwain/internal/domain/ticket"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error)
}

// TransactionRunner runs a function inside one database transaction.
// *db.TransactionManager satisfies it.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TicketNotifier fans a ticket event out to the parties watching the
// order, typically by email. Implementations must not block on slow
// transports longer than the context allows.
type TicketNotifier interface {
	NotifyTicketCreated(ctx context.Context, t *ticket.Ticket) error
	NotifyCommentAdded(ctx context.Context, t *ticket.Ticket, c *ticket.Comment) error
}
