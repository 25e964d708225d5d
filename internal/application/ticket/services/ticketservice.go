// Package services exposes the ticket context to in-process consumers,
// primarily the review engine's ticket registry.
package services

import (
	"context"

	"cordwain/internal/application/review"
	"cordwain/internal/application/ticket/usecases"
	"cordwain/internal/domain/ticket"
	vo "cordwain/internal/domain/ticket/valueobjects"
	"cordwain/internal/shared/logger"
)

// TicketService implements review.TicketService on top of the ticket use
// cases. Every method returns the authoritative record the store produced.
type TicketService struct {
	createUC        usecases.CreateTicketExecutor
	changeStatusUC  usecases.ChangeStatusExecutor
	deleteUC        usecases.DeleteTicketExecutor
	addCommentUC    usecases.AddCommentExecutor
	deleteCommentUC usecases.DeleteCommentExecutor
	listUC          usecases.ListTicketsExecutor
	logger          logger.Interface
}

func NewTicketService(
	createUC usecases.CreateTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	deleteUC usecases.DeleteTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
	listUC usecases.ListTicketsExecutor,
	logger logger.Interface,
) *TicketService {
	return &TicketService{
		createUC:        createUC,
		changeStatusUC:  changeStatusUC,
		deleteUC:        deleteUC,
		addCommentUC:    addCommentUC,
		deleteCommentUC: deleteCommentUC,
		listUC:          listUC,
		logger:          logger,
	}
}

var _ review.TicketService = (*TicketService)(nil)

func (s *TicketService) ListTickets(ctx context.Context) ([]*ticket.Ticket, error) {
	result, err := s.listUC.Execute(ctx, usecases.ListTicketsQuery{})
	if err != nil {
		return nil, err
	}
	return result.Tickets, nil
}

func (s *TicketService) ListTicketsForOrder(ctx context.Context, orderID uint) ([]*ticket.Ticket, error) {
	result, err := s.listUC.Execute(ctx, usecases.ListTicketsQuery{OrderID: &orderID})
	if err != nil {
		return nil, err
	}
	return result.Tickets, nil
}

func (s *TicketService) CreateTicket(ctx context.Context, scope vo.Scope, title string, priority vo.Priority, creatorID uint) (*ticket.Ticket, error) {
	result, err := s.createUC.Execute(ctx, usecases.CreateTicketCommand{
		OrderID:    scope.OrderID(),
		PositionID: scope.PositionID(),
		ViewKey:    scope.ViewKey(),
		Title:      title,
		Priority:   priority.String(),
		CreatorID:  creatorID,
	})
	if err != nil {
		return nil, err
	}
	return result.Ticket, nil
}

func (s *TicketService) SetTicketStatus(ctx context.Context, ticketID uint, status vo.TicketStatus) (*ticket.Ticket, error) {
	result, err := s.changeStatusUC.Execute(ctx, usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: status,
		ChangedBy: systemActorID,
	})
	if err != nil {
		return nil, err
	}
	return result.Ticket, nil
}

func (s *TicketService) DeleteTicket(ctx context.Context, ticketID uint) error {
	_, err := s.deleteUC.Execute(ctx, usecases.DeleteTicketCommand{TicketID: ticketID, DeletedBy: systemActorID})
	return err
}

func (s *TicketService) AddComment(ctx context.Context, ticketID uint, payload review.CommentPayload) (*ticket.Comment, error) {
	result, err := s.addCommentUC.Execute(ctx, usecases.AddCommentCommand{
		TicketID:    ticketID,
		AuthorID:    payload.AuthorID,
		AuthorName:  payload.AuthorName,
		TextDE:      payload.TextDE,
		TextEN:      payload.TextEN,
		Attachments: payload.Attachments,
	})
	if err != nil {
		return nil, err
	}
	return result.Comment, nil
}

func (s *TicketService) DeleteComment(ctx context.Context, ticketID, commentID uint) error {
	_, err := s.deleteCommentUC.Execute(ctx, usecases.DeleteCommentCommand{
		TicketID:  ticketID,
		CommentID: commentID,
		DeletedBy: systemActorID,
	})
	return err
}

// systemActorID marks mutations initiated by in-process components rather
// than an authenticated request.
const systemActorID uint = 1
