package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/service"
	"github.com/noah-isme/tutor-dashboard-api/pkg/response"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

type blockService interface {
	List(ctx context.Context, sess *session.Session) (*service.BlockResult, error)
	Add(ctx context.Context, sess *session.Session, req dto.AddBlockedDateRequest) (*service.BlockResult, error)
	Remove(ctx context.Context, sess *session.Session, id string) (*service.BlockResult, error)
}

// BlockedDateHandler manages full-day blocks.
type BlockedDateHandler struct {
	service blockService
	notices Notices
}

// NewBlockedDateHandler constructs handler.
func NewBlockedDateHandler(svc blockService, notices Notices) *BlockedDateHandler {
	return &BlockedDateHandler{service: svc, notices: notices}
}

// List godoc
// @Summary List blocked dates
// @Tags Availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=service.BlockResult}
// @Router /availability/blocked-dates [get]
func (h *BlockedDateHandler) List(c *gin.Context) {
	out, err := h.service.List(c.Request.Context(), sessionFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// Add godoc
// @Summary Block a date
// @Tags Availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.AddBlockedDateRequest true "Date and reason"
// @Success 201 {object} response.Envelope{data=service.BlockResult}
// @Failure 412 {object} response.Envelope
// @Router /availability/blocked-dates [post]
func (h *BlockedDateHandler) Add(c *gin.Context) {
	var req dto.AddBlockedDateRequest
	if err := bindJSON(c, &req); err != nil {
		h.notices.fail(c, err, "Please select a date")
		return
	}
	out, err := h.service.Add(c.Request.Context(), sessionFrom(c), req)
	if err != nil {
		h.notices.fail(c, err, "Failed to block date")
		return
	}
	h.notices.success(c, "Date blocked successfully!")
	response.JSON(c, http.StatusCreated, out)
}

// Remove godoc
// @Summary Unblock a date
// @Tags Availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blocked date ID"
// @Success 200 {object} response.Envelope{data=service.BlockResult}
// @Router /availability/blocked-dates/{id} [delete]
func (h *BlockedDateHandler) Remove(c *gin.Context) {
	out, err := h.service.Remove(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		h.notices.fail(c, err, "Failed to unblock date")
		return
	}
	h.notices.success(c, "Date unblocked successfully!")
	response.JSON(c, http.StatusOK, out)
}
