package ticket

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cordwain/internal/application/review"
	"cordwain/internal/application/ticket/usecases"
	domain "cordwain/internal/domain/ticket"
	vo "cordwain/internal/domain/ticket/valueobjects"
	"cordwain/internal/interfaces/http/middleware"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
	"cordwain/internal/shared/utils"
)

// Registry is the mutation surface of the ticket registry. Writes go
// through it so every collection holding a copy of the ticket converges
// immediately instead of waiting for the next refresh.
type Registry interface {
	Create(ctx context.Context, scope vo.Scope, title string, priority vo.Priority, creatorID uint) (*domain.Ticket, error)
	SetStatus(ctx context.Context, ticketID uint, next vo.TicketStatus, rc domain.ResolveContext) (*domain.Ticket, error)
	Delete(ctx context.Context, ticketID uint, rc domain.ResolveContext) error
	AddComment(ctx context.Context, ticketID uint, payload review.CommentPayload, rc domain.ResolveContext) (*domain.Comment, error)
	DeleteComment(ctx context.Context, ticketID, commentID uint, rc domain.ResolveContext) error
}

type TicketHandler struct {
	registry      Registry
	getTicketUC   usecases.GetTicketExecutor
	listTicketsUC usecases.ListTicketsExecutor
	thread        *review.Thread
	logger        logger.Interface
}

func NewTicketHandler(
	registry Registry,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	thread *review.Thread,
) *TicketHandler {
	return &TicketHandler{
		registry:      registry,
		getTicketUC:   getTicketUC,
		listTicketsUC: listTicketsUC,
		thread:        thread,
		logger:        logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	scope, err := vo.NewScope(req.OrderID, req.PositionID, req.ViewKey)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	priority, err := vo.NewPriority(req.Priority)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	created, err := h.registry.Create(c.Request.Context(), scope, req.Title, priority, middleware.UserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role := middleware.UserRole(c)
	resp := toTicketResponse(created, nil, string(review.ReplyLanguage(role)))
	utils.CreatedResponse(c, resp, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role := middleware.UserRole(c)
	resp := toTicketResponse(t, h.thread.Render(t, role), string(review.ReplyLanguage(role)))
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role := middleware.UserRole(c)
	items := make([]TicketResponse, len(result.Tickets))
	for i, t := range result.Tickets {
		items[i] = toTicketResponse(t, h.thread.Render(t, role), "")
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"tickets": items,
		"total":   result.Total,
	})
}

// UpdateTicketStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	var newStatus vo.TicketStatus
	switch req.Status {
	case "open":
		newStatus = vo.StatusOpen
	case "closed":
		newStatus = vo.StatusClosed
	default:
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid status value")
		return
	}

	rc, err := resolveContextFromQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.registry.SetStatus(c.Request.Context(), ticketID, newStatus, rc)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role := middleware.UserRole(c)
	resp := toTicketResponse(updated, h.thread.Render(updated, role), "")
	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", resp)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rc, err := resolveContextFromQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.registry.Delete(c.Request.Context(), ticketID, rc); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The missing language variant is auto-translated best effort; a
	// failed translation never blocks the comment.
	payload, err := h.thread.BuildPayload(
		c.Request.Context(),
		middleware.UserID(c),
		middleware.UserName(c),
		req.Text,
		domain.Language(req.Language),
		req.DomainAttachments(),
	)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rc, err := resolveContextFromQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comment, err := h.registry.AddComment(c.Request.Context(), ticketID, payload, rc)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"comment_id": comment.ID(),
		"created_at": comment.CreatedAt().UnixMilli(),
	}, "Comment added successfully")
}

// DeleteComment handles DELETE /tickets/:id/comments/:commentId
func (h *TicketHandler) DeleteComment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	commentID, err := utils.ParseUintParam(c, "commentId", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rc, err := resolveContextFromQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.registry.DeleteComment(c.Request.Context(), ticketID, commentID, rc); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// resolveContextFromQuery reads the optional order_id/position_id query
// params that disambiguate a ticket id shared across fetch epochs. An
// absent param leaves the context field unset; the id-only fallback then
// applies.
func resolveContextFromQuery(c *gin.Context) (domain.ResolveContext, error) {
	rc := domain.ResolveContext{}

	if orderIDStr := c.Query("order_id"); orderIDStr != "" {
		orderID, err := strconv.ParseUint(orderIDStr, 10, 32)
		if err != nil {
			return rc, errors.NewValidationError("Invalid order_id")
		}
		rc = rc.WithOrder(uint(orderID))
	}

	if positionIDStr := c.Query("position_id"); positionIDStr != "" {
		positionID, err := strconv.ParseUint(positionIDStr, 10, 32)
		if err != nil {
			return rc, errors.NewValidationError("Invalid position_id")
		}
		id := uint(positionID)
		rc = rc.WithPosition(&id)
	}

	return rc, nil
}
