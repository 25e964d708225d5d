package usecases

import (
	"context"
	"fmt"
	"time"

	"cordwain/internal/domain/ticket"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID    uint
	AuthorID    uint
	AuthorName  string
	TextDE      string
	TextEN      string
	Attachments []ticket.Attachment
}

type AddCommentResult struct {
	CommentID uint
	CreatedAt time.Time
	Comment   *ticket.Comment
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       TransactionRunner
	notifier    TicketNotifier
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txMgr TransactionRunner,
	notifier TicketNotifier,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, cmd.AuthorName, cmd.TextDE, cmd.TextEN, cmd.Attachments)
	if err != nil {
		uc.logger.Errorw("failed to create comment", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// Comment save and ticket bump are atomic; a failed step rolls back both.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			uc.logger.Errorw("failed to save comment", "error", err)
			return fmt.Errorf("failed to save comment: %w", err)
		}

		if err := t.AddComment(comment); err != nil {
			uc.logger.Errorw("failed to add comment to ticket", "error", err)
			return fmt.Errorf("failed to add comment to ticket: %w", err)
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "error", err)
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyCommentAdded(ctx, t, comment); err != nil {
			uc.logger.Warnw("failed to send comment notification", "ticket_id", cmd.TicketID, "error", err)
		}
	}

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)

	return &AddCommentResult{
		CommentID: comment.ID(),
		CreatedAt: comment.CreatedAt(),
		Comment:   comment,
	}, nil
}
