package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/response"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

type calendarService interface {
	Month(ctx context.Context, sess *session.Session, year, month int) (*dto.CalendarMonthResponse, error)
	ServerMonth(ctx context.Context, sess *session.Session, year, month int) (*dto.CalendarMonthResponse, error)
	Day(ctx context.Context, sess *session.Session, date models.Date) (*dto.CalendarDayResponse, error)
	Export(ctx context.Context, sess *session.Session, year, month int, format string) (*dto.ExportFile, error)
}

// CalendarHandler serves the tutor's month calendar.
type CalendarHandler struct {
	service calendarService
}

// NewCalendarHandler constructs handler.
func NewCalendarHandler(svc calendarService) *CalendarHandler {
	return &CalendarHandler{service: svc}
}

// Month godoc
// @Summary Month calendar
// @Description Classifies every date of the month from the weekly schedule, blocked dates and bookings.
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} response.Envelope{data=dto.CalendarMonthResponse}
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /calendar/{year}/{month} [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	h.month(c, h.service.Month)
}

// ServerMonth godoc
// @Summary Marketplace month calendar
// @Description Marketplace-computed calendar with local blocks and bookings overlaid.
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} response.Envelope{data=dto.CalendarMonthResponse}
// @Router /calendar/{year}/{month}/server [get]
func (h *CalendarHandler) ServerMonth(c *gin.Context) {
	h.month(c, h.service.ServerMonth)
}

func (h *CalendarHandler) month(c *gin.Context, load func(context.Context, *session.Session, int, int) (*dto.CalendarMonthResponse, error)) {
	year, err := intParam(c, "year")
	if err != nil {
		response.Error(c, err)
		return
	}
	month, err := intParam(c, "month")
	if err != nil {
		response.Error(c, err)
		return
	}
	out, err := load(c.Request.Context(), sessionFrom(c), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// Day godoc
// @Summary Calendar day
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope{data=dto.CalendarDayResponse}
// @Router /calendar/day/{date} [get]
func (h *CalendarHandler) Day(c *gin.Context) {
	date, err := models.ParseDate(c.Param("date"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date must be YYYY-MM-DD"))
		return
	}
	out, err := h.service.Day(c.Request.Context(), sessionFrom(c), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// Export godoc
// @Summary Export month calendar
// @Tags Calendar
// @Produce application/pdf,text/csv
// @Security BearerAuth
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param format query string false "pdf (default) or csv"
// @Success 200 {file} file
// @Router /calendar/{year}/{month}/export [get]
func (h *CalendarHandler) Export(c *gin.Context) {
	year, err := intParam(c, "year")
	if err != nil {
		response.Error(c, err)
		return
	}
	month, err := intParam(c, "month")
	if err != nil {
		response.Error(c, err)
		return
	}
	var query dto.CalendarExportQuery
	if err := bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.service.Export(c.Request.Context(), sessionFrom(c), year, month, query.Format)
	if err != nil {
		response.Error(c, err)
		return
	}
	sendFile(c, file)
}
