package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cordwain/internal/domain/ticket"
	vo "cordwain/internal/domain/ticket/valueobjects"
	apperrors "cordwain/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	positionID := uint(2)
	viewKey := "lateral"

	tests := []struct {
		name      string
		command   CreateTicketCommand
		wantScope string
	}{
		{
			name: "order level ticket",
			command: CreateTicketCommand{
				OrderID:   10,
				Title:     "Wrong leather batch delivered",
				Priority:  string(vo.PriorityHigh),
				CreatorID: 1,
			},
			wantScope: "order 10",
		},
		{
			name: "position level ticket",
			command: CreateTicketCommand{
				OrderID:    10,
				PositionID: &positionID,
				Title:      "Sole color deviates from sample",
				Priority:   string(vo.PriorityMedium),
				CreatorID:  2,
			},
			wantScope: "order 10 / position 2",
		},
		{
			name: "view level ticket",
			command: CreateTicketCommand{
				OrderID:    10,
				PositionID: &positionID,
				ViewKey:    &viewKey,
				Title:      "Stitching uneven on lateral panel",
				Priority:   string(vo.PriorityUrgent),
				CreatorID:  2,
			},
			wantScope: "order 10 / position 2 / view lateral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var savedTicket *ticket.Ticket
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					if err := tkt.SetID(100); err != nil {
						return err
					}
					savedTicket = tkt
					return nil
				},
			}
			notified := false
			notifier := &mockNotifier{
				NotifyTicketCreatedFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					notified = true
					return nil
				},
			}

			useCase := NewCreateTicketUseCase(mockRepo, notifier, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.NoError(t, err)
			assert.Equal(t, uint(100), result.TicketID)
			assert.Equal(t, tt.wantScope, result.Scope)
			assert.Equal(t, vo.StatusOpen.String(), result.Status)
			assert.True(t, notified)
			require.NotNil(t, savedTicket)
			assert.Equal(t, vo.StatusOpen, savedTicket.Status())
		})
	}
}

func TestCreateTicketUseCase_Execute_ValidationFailures(t *testing.T) {
	viewKey := "lateral"

	tests := []struct {
		name    string
		command CreateTicketCommand
	}{
		{
			name:    "missing order",
			command: CreateTicketCommand{Title: "x", Priority: "medium", CreatorID: 1},
		},
		{
			name:    "missing title",
			command: CreateTicketCommand{OrderID: 10, Priority: "medium", CreatorID: 1},
		},
		{
			name:    "invalid priority",
			command: CreateTicketCommand{OrderID: 10, Title: "x", Priority: "critical", CreatorID: 1},
		},
		{
			name:    "view without position",
			command: CreateTicketCommand{OrderID: 10, Title: "x", Priority: "medium", CreatorID: 1, ViewKey: &viewKey},
		},
		{
			name:    "missing creator",
			command: CreateTicketCommand{OrderID: 10, Title: "x", Priority: "medium"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateTicketUseCase(&mockTicketRepository{}, nil, &mockLogger{})
			_, err := useCase.Execute(context.Background(), tt.command)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestCreateTicketUseCase_Execute_SaveFailure(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return errors.New("database unavailable")
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, nil, &mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateTicketCommand{
		OrderID:   10,
		Title:     "Heel cap cracked",
		Priority:  string(vo.PriorityMedium),
		CreatorID: 1,
	})
	require.Error(t, err)
}

func TestCreateTicketUseCase_Execute_NotificationFailureDoesNotFail(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return tkt.SetID(100)
		},
	}
	notifier := &mockNotifier{
		NotifyTicketCreatedFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return errors.New("smtp unreachable")
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, notifier, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		OrderID:   10,
		Title:     "Heel cap cracked",
		Priority:  string(vo.PriorityMedium),
		CreatorID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(100), result.TicketID)
}
