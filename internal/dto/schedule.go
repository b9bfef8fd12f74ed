package dto

import (
	"time"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
)

// ScheduleDraftResponse is the editable weekly template.
type ScheduleDraftResponse struct {
	WeeklySchedule models.WeeklySchedule  `json:"weekly_schedule"`
	SlotCounts     map[models.Weekday]int `json:"slot_counts"`
	Timezone       string                 `json:"timezone,omitempty"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// AddSlotRequest appends a slot. Omitted times fall back to the default slot.
type AddSlotRequest struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// UpdateSlotRequest edits one field of a slot.
type UpdateSlotRequest struct {
	Field string `json:"field" validate:"required,oneof=start_time end_time"`
	Value string `json:"value" validate:"required"`
}

// ReplaceScheduleRequest overwrites the whole draft.
type ReplaceScheduleRequest struct {
	WeeklySchedule models.WeeklySchedule `json:"weekly_schedule" validate:"required"`
}
