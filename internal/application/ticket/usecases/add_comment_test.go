package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cordwain/internal/domain/ticket"
	vo "cordwain/internal/domain/ticket/valueobjects"
	apperrors "cordwain/internal/shared/errors"
)

func ticketForComments(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()
	scope, err := vo.NewOrderScope(10)
	require.NoError(t, err)

	now := time.Now().UTC()
	tkt, err := ticket.ReconstructTicket(id, scope, "Outsole bonding weak", vo.StatusOpen, vo.PriorityMedium, 1, now, now, nil)
	require.NoError(t, err)
	return tkt
}

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	var savedComment *ticket.Comment
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketForComments(t, ticketID), nil
		},
	}
	mockCommentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, comment *ticket.Comment) error {
			if err := comment.SetID(55); err != nil {
				return err
			}
			savedComment = comment
			return nil
		},
	}
	notified := false
	notifier := &mockNotifier{
		NotifyCommentAddedFunc: func(ctx context.Context, tkt *ticket.Ticket, c *ticket.Comment) error {
			notified = true
			return nil
		},
	}

	useCase := NewAddCommentUseCase(mockTicketRepo, mockCommentRepo, passthroughTxRunner{}, notifier, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID:   1,
		AuthorID:   3,
		AuthorName: "A. Weber",
		TextDE:     "Klebstoff prüfen",
		TextEN:     "Check the adhesive",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(55), result.CommentID)
	require.NotNil(t, savedComment)
	assert.Equal(t, "Klebstoff prüfen", savedComment.Text(ticket.LangGerman))
	assert.Equal(t, "Check the adhesive", savedComment.Text(ticket.LangEnglish))
	assert.True(t, notified)
}

func TestAddCommentUseCase_Execute_AttachmentOnly(t *testing.T) {
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketForComments(t, ticketID), nil
		},
	}
	mockCommentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, comment *ticket.Comment) error {
			return comment.SetID(56)
		},
	}

	useCase := NewAddCommentUseCase(mockTicketRepo, mockCommentRepo, passthroughTxRunner{}, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID:   1,
		AuthorID:   3,
		AuthorName: "J. Smith",
		Attachments: []ticket.Attachment{
			{FileName: "defect.jpg", URL: "https://media.example/defect.jpg", Size: 2048, ContentType: "image/jpeg"},
		},
	})

	require.NoError(t, err)
	assert.Len(t, result.Comment.Attachments(), 1)
}

func TestAddCommentUseCase_Execute_EmptyCommentRejected(t *testing.T) {
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketForComments(t, ticketID), nil
		},
	}

	useCase := NewAddCommentUseCase(mockTicketRepo, &mockCommentRepository{}, passthroughTxRunner{}, nil, &mockLogger{})
	_, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID:   1,
		AuthorID:   3,
		AuthorName: "J. Smith",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestAddCommentUseCase_Execute_TicketNotFound(t *testing.T) {
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, errors.New("record not found")
		},
	}

	useCase := NewAddCommentUseCase(mockTicketRepo, &mockCommentRepository{}, passthroughTxRunner{}, nil, &mockLogger{})
	_, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID:   999,
		AuthorID:   3,
		AuthorName: "J. Smith",
		TextEN:     "hello",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAddCommentUseCase_Execute_SaveFailureRollsBack(t *testing.T) {
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return ticketForComments(t, ticketID), nil
		},
	}
	mockCommentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, comment *ticket.Comment) error {
			return errors.New("constraint violation")
		},
	}
	notifier := &mockNotifier{
		NotifyCommentAddedFunc: func(ctx context.Context, tkt *ticket.Ticket, c *ticket.Comment) error {
			t.Fatal("no notification for a failed save")
			return nil
		},
	}

	useCase := NewAddCommentUseCase(mockTicketRepo, mockCommentRepo, passthroughTxRunner{}, notifier, &mockLogger{})
	_, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID:   1,
		AuthorID:   3,
		AuthorName: "J. Smith",
		TextEN:     "hello",
	})
	require.Error(t, err)
}
