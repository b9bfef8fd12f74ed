package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	"github.com/noah-isme/tutor-dashboard-api/pkg/response"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

type adminService interface {
	Stats(ctx context.Context, sess *session.Session) (*models.AdminStats, error)
	SystemMetrics() dto.SystemMetrics
	Bookings(ctx context.Context, sess *session.Session, query dto.AdminBookingsQuery) (*dto.AdminBookingsResponse, error)
	UpdateBookingStatus(ctx context.Context, sess *session.Session, id string, req dto.AdminStatusRequest) (*models.AdminBooking, error)
	ExportBookings(ctx context.Context, sess *session.Session, query dto.AdminBookingsQuery) (*dto.ExportFile, error)
}

// AdminHandler backs the admin console.
type AdminHandler struct {
	service adminService
	notices Notices
}

// NewAdminHandler constructs handler.
func NewAdminHandler(svc adminService, notices Notices) *AdminHandler {
	return &AdminHandler{service: svc, notices: notices}
}

// Stats godoc
// @Summary Platform counters
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=models.AdminStats}
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	out, err := h.service.Stats(c.Request.Context(), sessionFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// SystemMetrics godoc
// @Summary Gateway health counters
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.SystemMetrics}
// @Router /admin/metrics [get]
func (h *AdminHandler) SystemMetrics(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.SystemMetrics())
}

// Bookings godoc
// @Summary Search bookings
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param search query string false "Student, tutor or subject"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope{data=dto.AdminBookingsResponse}
// @Router /admin/bookings [get]
func (h *AdminHandler) Bookings(c *gin.Context) {
	var query dto.AdminBookingsQuery
	if err := bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}
	out, err := h.service.Bookings(c.Request.Context(), sessionFrom(c), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// ExportBookings godoc
// @Summary Export bookings
// @Tags Admin
// @Produce text/csv,application/pdf
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param search query string false "Student, tutor or subject"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /admin/bookings/export [get]
func (h *AdminHandler) ExportBookings(c *gin.Context) {
	var query dto.AdminBookingsQuery
	if err := bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.service.ExportBookings(c.Request.Context(), sessionFrom(c), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendFile(c, file)
}

// UpdateBookingStatus godoc
// @Summary Force a booking status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param payload body dto.AdminStatusRequest true "Status"
// @Success 200 {object} response.Envelope{data=models.AdminBooking}
// @Router /admin/bookings/{id}/status [put]
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var req dto.AdminStatusRequest
	if err := bindJSON(c, &req); err != nil {
		h.notices.fail(c, err, "Invalid status")
		return
	}
	out, err := h.service.UpdateBookingStatus(c.Request.Context(), sessionFrom(c), c.Param("id"), req)
	if err != nil {
		h.notices.fail(c, err, "Failed to update booking")
		return
	}
	h.notices.success(c, "Booking status updated")
	response.JSON(c, http.StatusOK, out)
}
