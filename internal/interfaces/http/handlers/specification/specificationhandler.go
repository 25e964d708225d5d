package specification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cordwain/internal/application/review"
	domain "cordwain/internal/domain/specification"
	"cordwain/internal/interfaces/http/middleware"
	"cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
	"cordwain/internal/shared/utils"
)

// maxMediaUploadBytes caps a single view upload.
const maxMediaUploadBytes = 32 << 20

// SessionProvider hands out the per-position review session every
// specification request runs through.
type SessionProvider interface {
	Session(orderID, positionID uint) (*review.SpecificationSession, error)
}

type SpecificationHandler struct {
	sessions SessionProvider
	logger   logger.Interface
}

func NewSpecificationHandler(sessions SessionProvider) *SpecificationHandler {
	return &SpecificationHandler{
		sessions: sessions,
		logger:   logger.NewLogger(),
	}
}

// GetSpecification handles GET /orders/:orderId/positions/:positionId/specification
// An optional ?view= query activates that view for the session.
func (h *SpecificationHandler) GetSpecification(c *gin.Context) {
	session, err := h.loadSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if requested := c.Query("view"); requested != "" {
		if _, err := session.ActivateView(domain.ViewKey(requested)); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	resp, err := toSpecificationResponse(session.Specification(), session.ActiveView())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// UploadMedia handles POST /orders/:orderId/positions/:positionId/views/:viewKey/media
// Uploading onto a view that already has a persisted asset replaces the
// file behind the same asset identity.
func (h *SpecificationHandler) UploadMedia(c *gin.Context) {
	session, err := h.loadSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("media file is required"))
		return
	}
	if fileHeader.Size > maxMediaUploadBytes {
		utils.ErrorResponseWithError(c, errors.NewValidationError("media file exceeds the upload limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer file.Close()

	asset, err := session.UploadMedia(c.Request.Context(), domain.ViewKey(c.Param("viewKey")), review.Upload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toMediaResponse(asset), "Media uploaded successfully")
}

// DeleteMedia handles DELETE /orders/:orderId/positions/:positionId/views/:viewKey/media
func (h *SpecificationHandler) DeleteMedia(c *gin.Context) {
	session, err := h.loadSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := session.DeleteMedia(c.Request.Context(), domain.ViewKey(c.Param("viewKey"))); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// SetMediaStatus handles PATCH /orders/:orderId/positions/:positionId/views/:viewKey/media/status
// The resolve direction is gated against open view tickets before the
// request reaches the store, and the store re-checks the same rule.
func (h *SpecificationHandler) SetMediaStatus(c *gin.Context) {
	session, err := h.loadSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetMediaStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set media status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	status, err := domain.NewMediaStatus(req.Status)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid status value"))
		return
	}

	asset, err := session.SetMediaStatus(c.Request.Context(), domain.ViewKey(c.Param("viewKey")), status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Media status updated successfully", toMediaResponse(asset))
}

// AddAnnotation handles POST /orders/:orderId/positions/:positionId/views/:viewKey/annotations
func (h *SpecificationHandler) AddAnnotation(c *gin.Context) {
	session, err := h.loadSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddAnnotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	annotation, err := session.AddAnnotation(
		c.Request.Context(),
		domain.ViewKey(c.Param("viewKey")),
		req.X,
		req.Y,
		req.Note,
		middleware.UserName(c),
	)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAnnotationResponse(annotation), "Annotation added successfully")
}

// DeleteAnnotation handles DELETE /orders/:orderId/positions/:positionId/annotations/:annotationId
func (h *SpecificationHandler) DeleteAnnotation(c *gin.Context) {
	session, err := h.loadSession(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	annotationID, err := utils.ParseUintParam(c, "annotationId", "annotation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := session.RemoveAnnotation(c.Request.Context(), annotationID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// loadSession resolves the position params, fetches the session, and
// refreshes its aggregate from the store.
func (h *SpecificationHandler) loadSession(c *gin.Context) (*review.SpecificationSession, error) {
	orderID, positionID, err := parsePositionParams(c)
	if err != nil {
		return nil, err
	}

	session, err := h.sessions.Session(orderID, positionID)
	if err != nil {
		return nil, err
	}

	if err := session.Load(c.Request.Context()); err != nil {
		return nil, err
	}
	return session, nil
}

func parsePositionParams(c *gin.Context) (uint, uint, error) {
	orderID, err := utils.ParseUintParam(c, "orderId", "order")
	if err != nil {
		return 0, 0, err
	}

	positionID, err := utils.ParseUintParam(c, "positionId", "position")
	if err != nil {
		return 0, 0, err
	}

	return orderID, positionID, nil
}
