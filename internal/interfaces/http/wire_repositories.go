package http

import (
	"cordwain/internal/domain/specification"
	"cordwain/internal/domain/ticket"
	"cordwain/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the domain interfaces the constructors satisfy.
type repositories struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	specRepo    specification.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		ticketRepo:  repository.NewTicketRepository(c.db),
		commentRepo: repository.NewCommentRepository(c.db),
		specRepo:    repository.NewSpecificationRepository(c.db),
	}
}
