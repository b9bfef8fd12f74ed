// Package availability derives per-day calendar classifications from a
// tutor's weekly template, blocked dates, and bookings.
package availability

import (
	"fmt"
	"time"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
)

// Policy holds the business rules the resolver applies on top of the data.
type Policy struct {
	NonWorkingDays map[time.Weekday]bool
}

// DefaultPolicy treats Saturday and Sunday as non-working.
func DefaultPolicy() Policy {
	return Policy{NonWorkingDays: map[time.Weekday]bool{time.Saturday: true, time.Sunday: true}}
}

// PolicyFromNames builds a policy from weekday keys such as "saturday".
// An empty list means every day is a working day.
func PolicyFromNames(names []string) (Policy, error) {
	p := Policy{NonWorkingDays: make(map[time.Weekday]bool, len(names))}
	for _, name := range names {
		day, err := models.ParseWeekday(name)
		if err != nil {
			return Policy{}, err
		}
		p.NonWorkingDays[day.TimeWeekday()] = true
	}
	return p, nil
}

// IsNonWorking reports whether d falls on a non-working weekday.
func (p Policy) IsNonWorking(d models.Date) bool {
	return p.NonWorkingDays[d.Weekday()]
}

// Resolver classifies calendar dates. It keeps no state between calls.
type Resolver struct {
	policy Policy
}

// NewResolver returns a resolver applying policy.
func NewResolver(policy Policy) *Resolver {
	return &Resolver{policy: policy}
}

// Policy returns the configured policy.
func (r *Resolver) Policy() Policy {
	return r.policy
}

// ResolveMonth classifies every date of the month. The result starts with
// nil placeholders so the first date lands in its Monday-first grid column.
// Dates before today stay classified but are not selectable.
func (r *Resolver) ResolveMonth(year int, month time.Month, schedule models.WeeklySchedule, blocks BlockLookup, bookings *BookingIndex, today models.Date) ([]*models.CalendarDay, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewMonthGrid(year, month)
	if err != nil {
		return nil, err
	}

	out := make([]*models.CalendarDay, grid.Leading, grid.Leading+len(grid.Dates))
	for _, d := range grid.Dates {
		slots := len(schedule[models.WeekdayOf(d.Weekday())])
		day := r.classify(d, slots, slots > 0, blocks, bookings)
		day.Selectable = !d.Before(today)
		out = append(out, day)
	}
	return out, nil
}

// Overlay applies local blocks and bookings on top of a server-computed
// month so mutations show up before the server recomputes. Dates missing
// from server are treated as unset.
func (r *Resolver) Overlay(server *models.MonthCalendar, blocks BlockLookup, bookings *BookingIndex, today models.Date) ([]*models.CalendarDay, error) {
	if server == nil {
		return nil, fmt.Errorf("server calendar is required")
	}
	grid, err := NewMonthGrid(server.Year, time.Month(server.Month))
	if err != nil {
		return nil, err
	}

	byDate := make(map[models.Date]models.CalendarDay, len(server.Days))
	for _, day := range server.Days {
		byDate[day.Date] = day
	}

	out := make([]*models.CalendarDay, grid.Leading, grid.Leading+len(grid.Dates))
	for _, d := range grid.Dates {
		remote := byDate[d]
		lookup := blocks
		if remote.IsBlocked {
			lookup = withServerBlock(blocks, d, remote.Reason)
		}
		day := r.classify(d, remote.SlotsCount, remote.IsAvailable && remote.SlotsCount > 0, lookup, bookings)
		day.Selectable = !d.Before(today)
		out = append(out, day)
	}
	return out, nil
}

func (r *Resolver) classify(d models.Date, slots int, scheduled bool, blocks BlockLookup, bookings *BookingIndex) *models.CalendarDay {
	day := &models.CalendarDay{Date: d}

	if blocks != nil {
		if b, ok := blocks.Lookup(d); ok {
			day.IsBlocked = true
			day.Reason = b.Reason
			day.State = models.DayBlocked
			return day
		}
	}

	switch {
	case bookings.HasAny(d):
		day.State = models.DayBooked
		day.SlotsCount = slots
		day.IsAvailable = scheduled
	case r.policy.IsNonWorking(d):
		day.State = models.DayWeekend
	case scheduled:
		day.State = models.DayAvailable
		day.IsAvailable = true
		day.SlotsCount = slots
	default:
		day.State = models.DayUnset
	}
	return day
}

type serverBlock struct {
	inner  BlockLookup
	date   models.Date
	reason string
}

func withServerBlock(inner BlockLookup, date models.Date, reason string) BlockLookup {
	return serverBlock{inner: inner, date: date, reason: reason}
}

func (s serverBlock) Lookup(date models.Date) (models.BlockedDate, bool) {
	if s.inner != nil {
		if b, ok := s.inner.Lookup(date); ok {
			return b, true
		}
	}
	if date == s.date {
		return models.BlockedDate{Date: date, Reason: s.reason}, true
	}
	return models.BlockedDate{}, false
}
