package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"cordwain/internal/domain/ticket"
	vo "cordwain/internal/domain/ticket/valueobjects"
	"cordwain/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) (*models.CommentModel, error)

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:         t.ID(),
		OrderID:    t.OrderID(),
		PositionID: t.PositionID(),
		ViewKey:    t.ViewKey(),
		Title:      t.Title(),
		Status:     t.Status().String(),
		Priority:   t.Priority().String(),
		CreatorID:  t.CreatorID(),
		CreatedAt:  t.CreatedAt().UnixMilli(),
		UpdatedAt:  t.UpdatedAt().UnixMilli(),
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
// This method only converts the ticket fields. Comments must be loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	scope, err := vo.NewScope(model.OrderID, model.PositionID, model.ViewKey)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket scope (id=%d): %w", model.ID, err)
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket priority (id=%d): %w", model.ID, err)
	}

	createdAt := ticketConvertMillisToTime(model.CreatedAt)
	updatedAt := ticketConvertMillisToTime(model.UpdatedAt)

	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := ticketConvertMillisToTime(*model.ClosedAt)
		closedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		scope,
		model.Title,
		status,
		priority,
		model.CreatorID,
		createdAt,
		updatedAt,
		closedAt,
	)
}

// CommentToModel converts a comment domain entity to a persistence model.
func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) (*models.CommentModel, error) {
	model := &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		AuthorName: c.AuthorName(),
		TextDE:     c.Text(ticket.LangGerman),
		TextEN:     c.Text(ticket.LangEnglish),
		CreatedAt:  c.CreatedAt().UnixMilli(),
	}

	if attachments := c.Attachments(); len(attachments) > 0 {
		data, err := json.Marshal(attachments)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal comment attachments: %w", err)
		}
		model.Attachments = data
	}

	return model, nil
}

// CommentToDomain converts a comment persistence model to a domain entity.
func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	var attachments []ticket.Attachment
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal comment attachments (id=%d): %w", model.ID, err)
		}
	}

	createdAt := ticketConvertMillisToTime(model.CreatedAt)

	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.AuthorName,
		model.TextDE,
		model.TextEN,
		attachments,
		createdAt,
	)
}

func ticketConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
