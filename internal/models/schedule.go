package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekday keys used by the weekly schedule payloads.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the seven keys Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday validates a schedule key. Matching is case-insensitive.
func ParseWeekday(raw string) (Weekday, error) {
	day := Weekday(strings.ToLower(strings.TrimSpace(raw)))
	if !day.Valid() {
		return "", fmt.Errorf("unknown weekday %q", raw)
	}
	return day, nil
}

// WeekdayOf maps a time.Weekday onto its schedule key.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekdays[(int(d)+6)%7]
}

// Valid reports whether w is one of the seven keys.
func (w Weekday) Valid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// TimeWeekday converts w to time.Weekday. w must be valid.
func (w Weekday) TimeWeekday() time.Weekday {
	for i, day := range Weekdays {
		if day == w {
			return time.Weekday((i + 1) % 7)
		}
	}
	return time.Sunday
}

// SlotField names an editable TimeSlot field.
type SlotField string

const (
	SlotFieldStart SlotField = "start_time"
	SlotFieldEnd   SlotField = "end_time"
)

// TimeSlot is a recurring wall-clock range, HH:MM 24h.
type TimeSlot struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// WeeklySchedule maps each weekday to its slots in insertion order.
type WeeklySchedule map[Weekday][]TimeSlot

// EmptyWeeklySchedule returns a schedule with all seven days present and empty.
func EmptyWeeklySchedule() WeeklySchedule {
	s := make(WeeklySchedule, len(Weekdays))
	for _, day := range Weekdays {
		s[day] = []TimeSlot{}
	}
	return s
}

// Clone deep-copies the schedule, filling any missing day with an empty list.
func (s WeeklySchedule) Clone() WeeklySchedule {
	out := EmptyWeeklySchedule()
	for day, slots := range s {
		cp := make([]TimeSlot, len(slots))
		copy(cp, slots)
		out[day] = cp
	}
	return out
}

// Validate rejects unknown weekday keys.
func (s WeeklySchedule) Validate() error {
	for day := range s {
		if !day.Valid() {
			return fmt.Errorf("unknown weekday %q in weekly schedule", string(day))
		}
	}
	return nil
}
