package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

// SessionClient issues calls on behalf of one authenticated caller.
type SessionClient struct {
	client *Client
	sess   *session.Session
}

type blockedDateRequest struct {
	Date   models.Date `json:"date"`
	Reason string      `json:"reason,omitempty"`
}

type meetLinkRequest struct {
	MeetingLink string `json:"meeting_link"`
}

type statusRequest struct {
	Status models.BookingStatus `json:"status"`
}

// GetSettings loads the tutor's availability settings.
func (s *SessionClient) GetSettings(ctx context.Context) (*models.AvailabilitySettings, error) {
	var out models.AvailabilitySettings
	if err := s.client.do(ctx, s.sess, "get_settings", http.MethodGet, "availability/settings", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings changes the non-schedule settings.
func (s *SessionClient) UpdateSettings(ctx context.Context, req models.UpdateSettingsRequest) (*models.AvailabilitySettings, error) {
	var out models.AvailabilitySettings
	if err := s.client.do(ctx, s.sess, "update_settings", http.MethodPut, "availability/settings", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSchedule replaces the weekly template.
func (s *SessionClient) UpdateSchedule(ctx context.Context, schedule models.WeeklySchedule) (*models.AvailabilitySettings, error) {
	var out models.AvailabilitySettings
	if err := s.client.do(ctx, s.sess, "update_schedule", http.MethodPut, "availability/schedule", nil, schedule.Clone(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBlockedDates returns every blocked date of the tutor.
func (s *SessionClient) ListBlockedDates(ctx context.Context) (*models.BlockedDateList, error) {
	var out models.BlockedDateList
	if err := s.client.do(ctx, s.sess, "list_blocked_dates", http.MethodGet, "availability/blocked-dates", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddBlockedDate blocks date.
func (s *SessionClient) AddBlockedDate(ctx context.Context, date models.Date, reason string) (*models.BlockedDate, error) {
	var out models.BlockedDate
	body := blockedDateRequest{Date: date, Reason: reason}
	if err := s.client.do(ctx, s.sess, "add_blocked_date", http.MethodPost, "availability/blocked-dates", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveBlockedDate deletes the block with id.
func (s *SessionClient) RemoveBlockedDate(ctx context.Context, id string) error {
	return s.client.do(ctx, s.sess, "remove_blocked_date", http.MethodDelete, "availability/blocked-dates/"+id, nil, nil, nil)
}

// GetCalendar returns the server-computed month.
func (s *SessionClient) GetCalendar(ctx context.Context, year, month int) (*models.MonthCalendar, error) {
	var out models.MonthCalendar
	path := fmt.Sprintf("availability/calendar/%d/%d", year, month)
	if err := s.client.do(ctx, s.sess, "get_calendar", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTutorBookings returns the tutor's bookings.
func (s *SessionClient) ListTutorBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := s.client.do(ctx, s.sess, "list_tutor_bookings", http.MethodGet, "bookings/tutor/my-bookings", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMyBookings returns the student's bookings.
func (s *SessionClient) ListMyBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := s.client.do(ctx, s.sess, "list_my_bookings", http.MethodGet, "bookings", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfirmBooking confirms a pending booking.
func (s *SessionClient) ConfirmBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.bookingAction(ctx, "confirm_booking", http.MethodPost, id, "confirm", nil)
}

// CancelBooking cancels a booking.
func (s *SessionClient) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.bookingAction(ctx, "cancel_booking", http.MethodPost, id, "cancel", nil)
}

// UpdateMeetLink sets the meeting link of a booking.
func (s *SessionClient) UpdateMeetLink(ctx context.Context, id, link string) (*models.Booking, error) {
	return s.bookingAction(ctx, "update_meet_link", http.MethodPut, id, "meet-link", meetLinkRequest{MeetingLink: link})
}

func (s *SessionClient) bookingAction(ctx context.Context, op, method, id, action string, body interface{}) (*models.Booking, error) {
	var out models.Booking
	path := "bookings/" + id + "/" + action
	if err := s.client.do(ctx, s.sess, op, method, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTutorStats returns the tutor's earnings summary.
func (s *SessionClient) GetTutorStats(ctx context.Context) (*models.TutorStats, error) {
	var out models.TutorStats
	if err := s.client.do(ctx, s.sess, "get_tutor_stats", http.MethodGet, "withdrawals/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWithdrawals returns the tutor's withdrawal history.
func (s *SessionClient) ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	var out []models.Withdrawal
	if err := s.client.do(ctx, s.sess, "list_withdrawals", http.MethodGet, "withdrawals/my", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RequestWithdrawal submits a payout request.
func (s *SessionClient) RequestWithdrawal(ctx context.Context, req models.WithdrawalRequest) (*models.Withdrawal, error) {
	var out models.Withdrawal
	if err := s.client.do(ctx, s.sess, "request_withdrawal", http.MethodPost, "withdrawals", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminStats returns platform counters.
func (s *SessionClient) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var out models.AdminStats
	if err := s.client.do(ctx, s.sess, "admin_stats", http.MethodGet, "admin/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminBookings lists bookings across the platform. An empty status lists all.
func (s *SessionClient) AdminBookings(ctx context.Context, status models.BookingStatus, skip, limit int) ([]models.AdminBooking, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	if skip > 0 {
		query.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out []models.AdminBooking
	if err := s.client.do(ctx, s.sess, "admin_bookings", http.MethodGet, "admin/bookings", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminUpdateBookingStatus forces a booking into status.
func (s *SessionClient) AdminUpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.AdminBooking, error) {
	var out models.AdminBooking
	path := "admin/bookings/" + id + "/status"
	if err := s.client.do(ctx, s.sess, "admin_update_booking_status", http.MethodPut, path, nil, statusRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me resolves the caller behind the bearer token.
func (s *SessionClient) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := s.client.do(ctx, s.sess, "get_me", http.MethodGet, "auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
