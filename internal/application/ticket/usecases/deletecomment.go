package usecases

import (
	"context"
	"fmt"

	"cordwain/internal/domain/ticket"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

type DeleteCommentCommand struct {
	TicketID  uint
	CommentID uint
	DeletedBy uint
}

type DeleteCommentResult struct {
	CommentID uint
}

type DeleteCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error) {
	uc.logger.Infow("executing delete comment use case", "ticket_id", cmd.TicketID, "comment_id", cmd.CommentID)

	if cmd.TicketID == 0 || cmd.CommentID == 0 {
		return nil, errors.NewValidationError("ticket ID and comment ID are required")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load comments")
	}

	found := false
	for _, c := range comments {
		if c.ID() == cmd.CommentID {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NewNotFoundError(fmt.Sprintf("comment %d not found on ticket %d", cmd.CommentID, cmd.TicketID))
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return nil, errors.NewInternalError("failed to delete comment")
	}

	uc.logger.Infow("comment deleted successfully", "comment_id", cmd.CommentID, "ticket_id", cmd.TicketID)

	return &DeleteCommentResult{
		CommentID: cmd.CommentID,
	}, nil
}
