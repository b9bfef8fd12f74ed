package service

import (
	"context"
	"sync"
	"time"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

// stubMarketplace implements MarketplaceAPI with optional per-call hooks.
// Unset hooks answer with an upstream-unavailable error.
type stubMarketplace struct {
	mu    sync.Mutex
	calls []string

	me                func() (*models.User, error)
	getSettings       func() (*models.AvailabilitySettings, error)
	updateSettings    func(models.UpdateSettingsRequest) (*models.AvailabilitySettings, error)
	updateSchedule    func(models.WeeklySchedule) (*models.AvailabilitySettings, error)
	listBlocked       func() (*models.BlockedDateList, error)
	addBlocked        func(models.Date, string) (*models.BlockedDate, error)
	removeBlocked     func(string) error
	getCalendar       func(int, int) (*models.MonthCalendar, error)
	tutorBookings     func() ([]models.Booking, error)
	myBookings        func() ([]models.Booking, error)
	confirm           func(string) (*models.Booking, error)
	cancel            func(string) (*models.Booking, error)
	meetLink          func(string, string) (*models.Booking, error)
	tutorStats        func() (*models.TutorStats, error)
	withdrawals       func() ([]models.Withdrawal, error)
	requestWithdrawal func(models.WithdrawalRequest) (*models.Withdrawal, error)
	adminStats        func() (*models.AdminStats, error)
	adminBookings     func(models.BookingStatus) ([]models.AdminBooking, error)
	adminStatus       func(string, models.BookingStatus) (*models.AdminBooking, error)
}

var errStubUnset = appErrors.Clone(appErrors.ErrUpstreamUnavailable, "stub not configured")

func (s *stubMarketplace) record(name string) {
	s.mu.Lock()
	s.calls = append(s.calls, name)
	s.mu.Unlock()
}

func (s *stubMarketplace) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (s *stubMarketplace) binder() MarketplaceBinder {
	return func(*session.Session) MarketplaceAPI { return s }
}

func (s *stubMarketplace) Me(context.Context) (*models.User, error) {
	s.record("Me")
	if s.me == nil {
		return nil, errStubUnset
	}
	return s.me()
}

func (s *stubMarketplace) GetSettings(context.Context) (*models.AvailabilitySettings, error) {
	s.record("GetSettings")
	if s.getSettings == nil {
		return nil, errStubUnset
	}
	return s.getSettings()
}

func (s *stubMarketplace) UpdateSettings(_ context.Context, req models.UpdateSettingsRequest) (*models.AvailabilitySettings, error) {
	s.record("UpdateSettings")
	if s.updateSettings == nil {
		return nil, errStubUnset
	}
	return s.updateSettings(req)
}

func (s *stubMarketplace) UpdateSchedule(_ context.Context, schedule models.WeeklySchedule) (*models.AvailabilitySettings, error) {
	s.record("UpdateSchedule")
	if s.updateSchedule == nil {
		return nil, errStubUnset
	}
	return s.updateSchedule(schedule)
}

func (s *stubMarketplace) ListBlockedDates(context.Context) (*models.BlockedDateList, error) {
	s.record("ListBlockedDates")
	if s.listBlocked == nil {
		return nil, errStubUnset
	}
	return s.listBlocked()
}

func (s *stubMarketplace) AddBlockedDate(_ context.Context, date models.Date, reason string) (*models.BlockedDate, error) {
	s.record("AddBlockedDate")
	if s.addBlocked == nil {
		return nil, errStubUnset
	}
	return s.addBlocked(date, reason)
}

func (s *stubMarketplace) RemoveBlockedDate(_ context.Context, id string) error {
	s.record("RemoveBlockedDate")
	if s.removeBlocked == nil {
		return errStubUnset
	}
	return s.removeBlocked(id)
}

func (s *stubMarketplace) GetCalendar(_ context.Context, year, month int) (*models.MonthCalendar, error) {
	s.record("GetCalendar")
	if s.getCalendar == nil {
		return nil, errStubUnset
	}
	return s.getCalendar(year, month)
}

func (s *stubMarketplace) ListTutorBookings(context.Context) ([]models.Booking, error) {
	s.record("ListTutorBookings")
	if s.tutorBookings == nil {
		return nil, errStubUnset
	}
	return s.tutorBookings()
}

func (s *stubMarketplace) ListMyBookings(context.Context) ([]models.Booking, error) {
	s.record("ListMyBookings")
	if s.myBookings == nil {
		return nil, errStubUnset
	}
	return s.myBookings()
}

func (s *stubMarketplace) ConfirmBooking(_ context.Context, id string) (*models.Booking, error) {
	s.record("ConfirmBooking")
	if s.confirm == nil {
		return nil, errStubUnset
	}
	return s.confirm(id)
}

func (s *stubMarketplace) CancelBooking(_ context.Context, id string) (*models.Booking, error) {
	s.record("CancelBooking")
	if s.cancel == nil {
		return nil, errStubUnset
	}
	return s.cancel(id)
}

func (s *stubMarketplace) UpdateMeetLink(_ context.Context, id, link string) (*models.Booking, error) {
	s.record("UpdateMeetLink")
	if s.meetLink == nil {
		return nil, errStubUnset
	}
	return s.meetLink(id, link)
}

func (s *stubMarketplace) GetTutorStats(context.Context) (*models.TutorStats, error) {
	s.record("GetTutorStats")
	if s.tutorStats == nil {
		return nil, errStubUnset
	}
	return s.tutorStats()
}

func (s *stubMarketplace) ListWithdrawals(context.Context) ([]models.Withdrawal, error) {
	s.record("ListWithdrawals")
	if s.withdrawals == nil {
		return nil, errStubUnset
	}
	return s.withdrawals()
}

func (s *stubMarketplace) RequestWithdrawal(_ context.Context, req models.WithdrawalRequest) (*models.Withdrawal, error) {
	s.record("RequestWithdrawal")
	if s.requestWithdrawal == nil {
		return nil, errStubUnset
	}
	return s.requestWithdrawal(req)
}

func (s *stubMarketplace) AdminStats(context.Context) (*models.AdminStats, error) {
	s.record("AdminStats")
	if s.adminStats == nil {
		return nil, errStubUnset
	}
	return s.adminStats()
}

func (s *stubMarketplace) AdminBookings(_ context.Context, status models.BookingStatus, _, _ int) ([]models.AdminBooking, error) {
	s.record("AdminBookings")
	if s.adminBookings == nil {
		return nil, errStubUnset
	}
	return s.adminBookings(status)
}

func (s *stubMarketplace) AdminUpdateBookingStatus(_ context.Context, id string, status models.BookingStatus) (*models.AdminBooking, error) {
	s.record("AdminUpdateBookingStatus")
	if s.adminStatus == nil {
		return nil, errStubUnset
	}
	return s.adminStatus(id, status)
}

func tutorSession() *session.Session {
	sess := session.New()
	sess.Init("token", "tutor-1", "tutor@example.com", session.RoleTutor, time.Time{})
	return sess
}
