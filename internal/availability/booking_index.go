package availability

import (
	"sort"
	"time"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
)

// OccupancyPolicy decides which bookings mark a date as booked.
type OccupancyPolicy struct {
	// CancelledOccupies keeps cancelled bookings on the calendar.
	CancelledOccupies bool
	// TutorLocalDates places a booking on its date in the tutor timezone
	// instead of the date written in scheduled_at.
	TutorLocalDates bool
}

// DefaultOccupancy counts every booking, cancelled ones included.
var DefaultOccupancy = OccupancyPolicy{CancelledOccupies: true}

// Occupies reports whether b counts toward a booked day.
func (p OccupancyPolicy) Occupies(b models.Booking) bool {
	if b.Status == models.BookingCancelled {
		return p.CancelledOccupies
	}
	return true
}

// DateOf returns the calendar date b occupies. By default that is the date
// component of scheduled_at as sent, naive timestamps included.
func (p OccupancyPolicy) DateOf(b models.Booking, loc *time.Location) models.Date {
	if p.TutorLocalDates {
		return models.DateIn(b.ScheduledAt.Time, loc)
	}
	return b.ScheduledAt.CalendarDate()
}

// BookingIndex groups bookings by the date of scheduled_at.
type BookingIndex struct {
	policy OccupancyPolicy
	byDate map[models.Date][]models.Booking
}

// NewBookingIndex builds an index. loc is the tutor timezone, used only when
// the policy asks for tutor-local dates; nil means UTC.
func NewBookingIndex(bookings []models.Booking, loc *time.Location, policy OccupancyPolicy) *BookingIndex {
	idx := &BookingIndex{policy: policy, byDate: make(map[models.Date][]models.Booking)}
	for _, b := range bookings {
		d := policy.DateOf(b, loc)
		idx.byDate[d] = append(idx.byDate[d], b)
	}
	for d := range idx.byDate {
		list := idx.byDate[d]
		sort.SliceStable(list, func(i, j int) bool { return list[i].ScheduledAt.Before(list[j].ScheduledAt.Time) })
	}
	return idx
}

// ForDate returns every booking on date in ascending scheduled_at order.
func (i *BookingIndex) ForDate(date models.Date) []models.Booking {
	if i == nil {
		return nil
	}
	list := i.byDate[date]
	out := make([]models.Booking, len(list))
	copy(out, list)
	return out
}

// HasAny reports whether date has a booking that occupies it under the policy.
func (i *BookingIndex) HasAny(date models.Date) bool {
	if i == nil {
		return false
	}
	for _, b := range i.byDate[date] {
		if i.policy.Occupies(b) {
			return true
		}
	}
	return false
}

// Dates lists dates carrying at least one booking, ascending.
func (i *BookingIndex) Dates() []models.Date {
	if i == nil {
		return nil
	}
	out := make([]models.Date, 0, len(i.byDate))
	for d := range i.byDate {
		out = append(out, d)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Before(out[b]) })
	return out
}
