package service

import (
	"context"
	"sync"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

const calendarKeyPrefix = "calendar:"

// MarketplaceAPI is the set of marketplace calls made for one caller.
type MarketplaceAPI interface {
	Me(ctx context.Context) (*models.User, error)
	GetSettings(ctx context.Context) (*models.AvailabilitySettings, error)
	UpdateSettings(ctx context.Context, req models.UpdateSettingsRequest) (*models.AvailabilitySettings, error)
	UpdateSchedule(ctx context.Context, schedule models.WeeklySchedule) (*models.AvailabilitySettings, error)
	ListBlockedDates(ctx context.Context) (*models.BlockedDateList, error)
	AddBlockedDate(ctx context.Context, date models.Date, reason string) (*models.BlockedDate, error)
	RemoveBlockedDate(ctx context.Context, id string) error
	GetCalendar(ctx context.Context, year, month int) (*models.MonthCalendar, error)
	ListTutorBookings(ctx context.Context) ([]models.Booking, error)
	ListMyBookings(ctx context.Context) ([]models.Booking, error)
	ConfirmBooking(ctx context.Context, id string) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) (*models.Booking, error)
	UpdateMeetLink(ctx context.Context, id, link string) (*models.Booking, error)
	GetTutorStats(ctx context.Context) (*models.TutorStats, error)
	ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	RequestWithdrawal(ctx context.Context, req models.WithdrawalRequest) (*models.Withdrawal, error)
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	AdminBookings(ctx context.Context, status models.BookingStatus, skip, limit int) ([]models.AdminBooking, error)
	AdminUpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.AdminBooking, error)
}

// MarketplaceBinder returns the API bound to sess credentials.
type MarketplaceBinder func(sess *session.Session) MarketplaceAPI

func requireUser(sess *session.Session) (string, error) {
	id := sess.UserID()
	if id == "" {
		return "", appErrors.ErrUnauthorized
	}
	return id, nil
}

// InFlightGuard rejects a second action on the same key while the first is
// still running. Different keys never block each other.
type InFlightGuard struct {
	mu      sync.Mutex
	running map[string]struct{}
}

// NewInFlightGuard constructs an empty guard.
func NewInFlightGuard() *InFlightGuard {
	return &InFlightGuard{running: make(map[string]struct{})}
}

// Acquire marks key busy. The returned release must be called when the
// action completes; ok is false when key is already busy.
func (g *InFlightGuard) Acquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.running[key]; busy {
		return nil, false
	}
	g.running[key] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.running, key)
		g.mu.Unlock()
	}, true
}
