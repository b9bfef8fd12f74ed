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

type bookingService interface {
	TutorBookings(ctx context.Context, sess *session.Session, query dto.TutorBookingsQuery) (*dto.TutorBookingsResponse, error)
	StudentBookings(ctx context.Context, sess *session.Session) (*dto.StudentBookingsResponse, error)
	Confirm(ctx context.Context, sess *session.Session, id string) (*models.Booking, error)
	Cancel(ctx context.Context, sess *session.Session, id string) (*models.Booking, error)
	UpdateMeetLink(ctx context.Context, sess *session.Session, id string, req dto.MeetLinkRequest) (*models.Booking, error)
}

// BookingHandler serves booking lists and the tutor booking actions.
type BookingHandler struct {
	service bookingService
	notices Notices
}

// NewBookingHandler constructs handler.
func NewBookingHandler(svc bookingService, notices Notices) *BookingHandler {
	return &BookingHandler{service: svc, notices: notices}
}

// TutorBookings godoc
// @Summary Tutor bookings grouped by date
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending|confirmed|completed|cancelled"
// @Param order query string false "asc|desc"
// @Success 200 {object} response.Envelope{data=dto.TutorBookingsResponse}
// @Router /bookings/tutor [get]
func (h *BookingHandler) TutorBookings(c *gin.Context) {
	var query dto.TutorBookingsQuery
	if err := bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}
	out, err := h.service.TutorBookings(c.Request.Context(), sessionFrom(c), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// StudentBookings godoc
// @Summary Student bookings split into upcoming and past
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.StudentBookingsResponse}
// @Router /bookings/student [get]
func (h *BookingHandler) StudentBookings(c *gin.Context) {
	out, err := h.service.StudentBookings(c.Request.Context(), sessionFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// Confirm godoc
// @Summary Confirm a booking
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Envelope{data=models.Booking}
// @Failure 409 {object} response.Envelope
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	out, err := h.service.Confirm(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		h.notices.fail(c, err, "Failed to confirm booking")
		return
	}
	response.Notify(c, response.NotificationSuccess, "Booking confirmed! Google Meet link has been generated.", h.notices.ConfirmedBooking)
	response.JSON(c, http.StatusOK, out)
}

// Cancel godoc
// @Summary Cancel a booking
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Envelope{data=models.Booking}
// @Failure 409 {object} response.Envelope
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	out, err := h.service.Cancel(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		h.notices.fail(c, err, "Failed to cancel booking")
		return
	}
	h.notices.success(c, "Booking cancelled")
	response.JSON(c, http.StatusOK, out)
}

// UpdateMeetLink godoc
// @Summary Set the meeting link
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param payload body dto.MeetLinkRequest true "Meeting link"
// @Success 200 {object} response.Envelope{data=models.Booking}
// @Failure 412 {object} response.Envelope
// @Router /bookings/{id}/meet-link [put]
func (h *BookingHandler) UpdateMeetLink(c *gin.Context) {
	var req dto.MeetLinkRequest
	if err := bindJSON(c, &req); err != nil {
		h.notices.fail(c, err, "Please enter a meeting link")
		return
	}
	out, err := h.service.UpdateMeetLink(c.Request.Context(), sessionFrom(c), c.Param("id"), req)
	if err != nil {
		h.notices.fail(c, err, "Failed to update meeting link")
		return
	}
	h.notices.success(c, "Meeting link updated!")
	response.JSON(c, http.StatusOK, out)
}
