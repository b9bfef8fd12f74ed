package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	"github.com/noah-isme/tutor-dashboard-api/internal/service"
	"github.com/noah-isme/tutor-dashboard-api/pkg/response"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

type scheduleService interface {
	Settings(ctx context.Context, sess *session.Session) (*models.AvailabilitySettings, error)
	UpdateSettings(ctx context.Context, sess *session.Session, req models.UpdateSettingsRequest) (*models.AvailabilitySettings, error)
	Draft(ctx context.Context, sess *session.Session) (*dto.ScheduleDraftResponse, error)
	AddSlot(ctx context.Context, sess *session.Session, req dto.AddSlotRequest) (*dto.ScheduleDraftResponse, error)
	RemoveSlot(ctx context.Context, sess *session.Session, day string, index int) (*dto.ScheduleDraftResponse, error)
	UpdateSlot(ctx context.Context, sess *session.Session, day string, index int, req dto.UpdateSlotRequest) (*dto.ScheduleDraftResponse, error)
	Replace(ctx context.Context, sess *session.Session, req dto.ReplaceScheduleRequest) (*dto.ScheduleDraftResponse, error)
	Save(ctx context.Context, sess *session.Session) (*service.ScheduleSaveResult, error)
	Discard(ctx context.Context, sess *session.Session) error
}

// ScheduleHandler edits availability settings and the weekly schedule draft.
type ScheduleHandler struct {
	service scheduleService
	notices Notices
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(svc scheduleService, notices Notices) *ScheduleHandler {
	return &ScheduleHandler{service: svc, notices: notices}
}

// Settings godoc
// @Summary Availability settings
// @Tags Availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=models.AvailabilitySettings}
// @Router /availability/settings [get]
func (h *ScheduleHandler) Settings(c *gin.Context) {
	out, err := h.service.Settings(c.Request.Context(), sessionFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// UpdateSettings godoc
// @Summary Update availability settings
// @Tags Availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.UpdateSettingsRequest true "Settings"
// @Success 200 {object} response.Envelope{data=models.AvailabilitySettings}
// @Router /availability/settings [put]
func (h *ScheduleHandler) UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := bindJSON(c, &req); err != nil {
		h.notices.fail(c, err, "Invalid settings")
		return
	}
	out, err := h.service.UpdateSettings(c.Request.Context(), sessionFrom(c), req)
	if err != nil {
		h.notices.fail(c, err, "Failed to update settings")
		return
	}
	h.notices.success(c, "Settings updated successfully!")
	response.JSON(c, http.StatusOK, out)
}

// Draft godoc
// @Summary Weekly schedule draft
// @Tags Availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.ScheduleDraftResponse}
// @Router /availability/schedule/draft [get]
func (h *ScheduleHandler) Draft(c *gin.Context) {
	out, err := h.service.Draft(c.Request.Context(), sessionFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// AddSlot godoc
// @Summary Add a time slot to a weekday
// @Tags Availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.AddSlotRequest true "Slot"
// @Success 200 {object} response.Envelope{data=dto.ScheduleDraftResponse}
// @Router /availability/schedule/draft/slots [post]
func (h *ScheduleHandler) AddSlot(c *gin.Context) {
	var req dto.AddSlotRequest
	if err := bindJSON(c, &req); err != nil {
		h.notices.fail(c, err, "Invalid time slot")
		return
	}
	out, err := h.service.AddSlot(c.Request.Context(), sessionFrom(c), req)
	if err != nil {
		h.notices.fail(c, err, "Failed to add time slot")
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// RemoveSlot godoc
// @Summary Remove a time slot
// @Tags Availability
// @Produce json
// @Security BearerAuth
// @Param day path string true "Weekday"
// @Param index path int true "Slot index"
// @Success 200 {object} response.Envelope{data=dto.ScheduleDraftResponse}
// @Router /availability/schedule/draft/slots/{day}/{index} [delete]
func (h *ScheduleHandler) RemoveSlot(c *gin.Context) {
	index, err := intParam(c, "index")
	if err != nil {
		h.notices.fail(c, err, "Invalid slot")
		return
	}
	out, err := h.service.RemoveSlot(c.Request.Context(), sessionFrom(c), c.Param("day"), index)
	if err != nil {
		h.notices.fail(c, err, "Failed to remove time slot")
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// UpdateSlot godoc
// @Summary Edit one field of a time slot
// @Tags Availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param day path string true "Weekday"
// @Param index path int true "Slot index"
// @Param payload body dto.UpdateSlotRequest true "Field and value"
// @Success 200 {object} response.Envelope{data=dto.ScheduleDraftResponse}
// @Router /availability/schedule/draft/slots/{day}/{index} [patch]
func (h *ScheduleHandler) UpdateSlot(c *gin.Context) {
	index, err := intParam(c, "index")
	if err != nil {
		h.notices.fail(c, err, "Invalid slot")
		return
	}
	var req dto.UpdateSlotRequest
	if err := bindJSON(c, &req); err != nil {
		h.notices.fail(c, err, "Invalid time slot")
		return
	}
	out, err := h.service.UpdateSlot(c.Request.Context(), sessionFrom(c), c.Param("day"), index, req)
	if err != nil {
		h.notices.fail(c, err, "Failed to update time slot")
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// Replace godoc
// @Summary Replace the whole draft
// @Tags Availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ReplaceScheduleRequest true "Weekly schedule"
// @Success 200 {object} response.Envelope{data=dto.ScheduleDraftResponse}
// @Router /availability/schedule/draft [put]
func (h *ScheduleHandler) Replace(c *gin.Context) {
	var req dto.ReplaceScheduleRequest
	if err := bindJSON(c, &req); err != nil {
		h.notices.fail(c, err, "Invalid schedule")
		return
	}
	out, err := h.service.Replace(c.Request.Context(), sessionFrom(c), req)
	if err != nil {
		h.notices.fail(c, err, "Failed to update schedule")
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// Save godoc
// @Summary Save the draft to the marketplace
// @Tags Availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=service.ScheduleSaveResult}
// @Failure 422 {object} response.Envelope
// @Router /availability/schedule/draft/save [post]
func (h *ScheduleHandler) Save(c *gin.Context) {
	out, err := h.service.Save(c.Request.Context(), sessionFrom(c))
	if err != nil {
		h.notices.fail(c, err, "Failed to save schedule")
		return
	}
	h.notices.success(c, "Schedule saved successfully!")
	response.JSON(c, http.StatusOK, out)
}

// Discard godoc
// @Summary Discard the draft
// @Tags Availability
// @Security BearerAuth
// @Success 204
// @Router /availability/schedule/draft [delete]
func (h *ScheduleHandler) Discard(c *gin.Context) {
	if err := h.service.Discard(c.Request.Context(), sessionFrom(c)); err != nil {
		h.notices.fail(c, err, "Failed to discard changes")
		return
	}
	response.NoContent(c)
}
