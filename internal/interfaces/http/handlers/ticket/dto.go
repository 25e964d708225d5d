package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"cordwain/internal/application/review"
	"cordwain/internal/application/ticket/usecases"
	domain "cordwain/internal/domain/ticket"
	"cordwain/internal/shared/errors"
)

type CreateTicketRequest struct {
	OrderID    uint    `json:"order_id" binding:"required"`
	PositionID *uint   `json:"position_id,omitempty"`
	ViewKey    *string `json:"view_key,omitempty" binding:"omitempty,viewkey"`
	Title      string  `json:"title" binding:"required,max=200"`
	Priority   string  `json:"priority" binding:"required,oneof=low medium high urgent"`
}

type AddCommentRequest struct {
	Text        string              `json:"text" binding:"max=5000"`
	Language    string              `json:"language" binding:"required,oneof=de en"`
	Attachments []AttachmentRequest `json:"attachments,omitempty"`
}

type AttachmentRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	URL         string `json:"url" binding:"required"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

func (r *AddCommentRequest) DomainAttachments() []domain.Attachment {
	if len(r.Attachments) == 0 {
		return nil
	}
	attachments := make([]domain.Attachment, len(r.Attachments))
	for i, a := range r.Attachments {
		attachments[i] = domain.Attachment{
			FileName:    a.FileName,
			URL:         a.URL,
			Size:        a.Size,
			ContentType: a.ContentType,
		}
	}
	return attachments
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open closed"`
}

type ListTicketsRequest struct {
	OrderID    *uint
	PositionID *uint
	Status     *string
	Priority   *string
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		OrderID:    r.OrderID,
		PositionID: r.PositionID,
		Status:     r.Status,
		Priority:   r.Priority,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	req := &ListTicketsRequest{}

	if orderIDStr := c.Query("order_id"); orderIDStr != "" {
		orderID, err := strconv.ParseUint(orderIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid order_id")
		}
		id := uint(orderID)
		req.OrderID = &id
	}

	if positionIDStr := c.Query("position_id"); positionIDStr != "" {
		positionID, err := strconv.ParseUint(positionIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid position_id")
		}
		id := uint(positionID)
		req.PositionID = &id
	}

	if status := c.Query("status"); status != "" {
		req.Status = &status
	}

	if priority := c.Query("priority"); priority != "" {
		req.Priority = &priority
	}

	return req, nil
}

// TicketResponse is the wire shape of one ticket with its rendered thread.
type TicketResponse struct {
	ID            uint                     `json:"id"`
	OrderID       uint                     `json:"order_id"`
	PositionID    *uint                    `json:"position_id,omitempty"`
	ViewKey       *string                  `json:"view_key,omitempty"`
	Scope         string                   `json:"scope"`
	Title         string                   `json:"title"`
	Status        string                   `json:"status"`
	Priority      string                   `json:"priority"`
	CreatorID     uint                     `json:"creator_id"`
	CommentCount  int                      `json:"comment_count"`
	Comments      []review.RenderedComment `json:"comments,omitempty"`
	ReplyLanguage string                   `json:"reply_language,omitempty"`
	CreatedAt     int64                    `json:"created_at"`
	UpdatedAt     int64                    `json:"updated_at"`
	ClosedAt      *int64                   `json:"closed_at,omitempty"`
}

func toTicketResponse(t *domain.Ticket, comments []review.RenderedComment, replyLang string) TicketResponse {
	resp := TicketResponse{
		ID:            t.ID(),
		OrderID:       t.OrderID(),
		PositionID:    t.PositionID(),
		ViewKey:       t.ViewKey(),
		Scope:         t.Scope().String(),
		Title:         t.Title(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		CreatorID:     t.CreatorID(),
		CommentCount:  len(t.Comments()),
		Comments:      comments,
		ReplyLanguage: replyLang,
		CreatedAt:     t.CreatedAt().UnixMilli(),
		UpdatedAt:     t.UpdatedAt().UnixMilli(),
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		resp.ClosedAt = &closed
	}

	return resp
}
