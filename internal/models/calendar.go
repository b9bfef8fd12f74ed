package models

import "time"

// DayState is the single classification shown for a calendar date.
type DayState string

const (
	DayBlocked   DayState = "blocked"
	DayBooked    DayState = "booked"
	DayWeekend   DayState = "weekend"
	DayAvailable DayState = "available"
	DayUnset     DayState = "unset"
)

// CalendarDay is the derived availability of one date. It is never persisted.
type CalendarDay struct {
	Date        Date     `json:"date"`
	IsAvailable bool     `json:"is_available"`
	IsBlocked   bool     `json:"is_blocked"`
	SlotsCount  int      `json:"slots_count"`
	Reason      string   `json:"reason,omitempty"`
	State       DayState `json:"state,omitempty"`
	Selectable  bool     `json:"selectable"`
}

// MonthCalendar is the upstream calendar payload.
type MonthCalendar struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// BlockedDate is a full-day override marking one date unavailable.
type BlockedDate struct {
	ID        string    `json:"id"`
	TutorID   string    `json:"tutor_id,omitempty"`
	Date      Date      `json:"date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt Timestamp `json:"created_at,omitempty"`
}

// BlockedDateList is the upstream list payload.
type BlockedDateList struct {
	BlockedDates []BlockedDate `json:"blocked_dates"`
	Total        int           `json:"total"`
}

// AvailabilitySettings is the tutor's persisted availability configuration.
type AvailabilitySettings struct {
	ID                  string         `json:"id"`
	TutorID             string         `json:"tutor_id"`
	Timezone            string         `json:"timezone"`
	SessionDuration     int            `json:"session_duration"`
	BufferTime          int            `json:"buffer_time"`
	AdvanceBookingDays  int            `json:"advance_booking_days"`
	MinNoticeHours      int            `json:"min_notice_hours"`
	IsAcceptingStudents bool           `json:"is_accepting_students"`
	WeeklySchedule      WeeklySchedule `json:"weekly_schedule"`
	CreatedAt           Timestamp      `json:"created_at"`
	UpdatedAt           Timestamp      `json:"updated_at"`
}

// Location resolves the settings timezone, falling back to fallback.
func (s *AvailabilitySettings) Location(fallback *time.Location) *time.Location {
	if fallback == nil {
		fallback = time.UTC
	}
	if s == nil || s.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}

// UpdateSettingsRequest carries the editable non-schedule settings.
type UpdateSettingsRequest struct {
	Timezone            *string `json:"timezone,omitempty"`
	SessionDuration     *int    `json:"session_duration,omitempty" validate:"omitempty,min=15,max=480"`
	BufferTime          *int    `json:"buffer_time,omitempty" validate:"omitempty,min=0,max=240"`
	AdvanceBookingDays  *int    `json:"advance_booking_days,omitempty" validate:"omitempty,min=1,max=365"`
	MinNoticeHours      *int    `json:"min_notice_hours,omitempty" validate:"omitempty,min=0,max=720"`
	IsAcceptingStudents *bool   `json:"is_accepting_students,omitempty"`
}
