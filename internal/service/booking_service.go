package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-dashboard-api/internal/availability"
	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

const upcomingLimit = 10

// Booking actions guarded against duplicate submission.
const (
	ActionConfirm  = "confirm"
	ActionCancel   = "cancel"
	ActionMeetLink = "meet_link"
)

// BookingService lists bookings and runs the tutor booking actions.
type BookingService struct {
	bind       MarketplaceBinder
	reads      tutorReads
	guard      *InFlightGuard
	metrics    *MetricsService
	validator  *validator.Validate
	defaultLoc *time.Location
	occupancy  availability.OccupancyPolicy
	logger     *zap.Logger
	now        func() time.Time
}

// NewBookingService constructs the service.
func NewBookingService(bind MarketplaceBinder, cache *CacheService, cacheTTL time.Duration, metrics *MetricsService, validate *validator.Validate, defaultLoc *time.Location, logger *zap.Logger) *BookingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &BookingService{
		bind:       bind,
		reads:      tutorReads{cache: cache, ttl: cacheTTL},
		guard:      NewInFlightGuard(),
		metrics:    metrics,
		validator:  validate,
		defaultLoc: defaultLoc,
		occupancy:  availability.DefaultOccupancy,
		logger:     logger,
		now:        time.Now,
	}
}

// WithOccupancy sets how bookings are assigned to dates when grouping.
func (s *BookingService) WithOccupancy(policy availability.OccupancyPolicy) *BookingService {
	s.occupancy = policy
	return s
}

// TutorBookings groups the tutor's bookings by date.
func (s *BookingService) TutorBookings(ctx context.Context, sess *session.Session, query dto.TutorBookingsQuery) (*dto.TutorBookingsResponse, error) {
	tutorID, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	api := s.bind(sess)
	bookings, err := s.reads.bookings(ctx, api)
	if err != nil {
		return nil, err
	}
	loc := s.defaultLoc
	if s.occupancy.TutorLocalDates {
		if settings, err := s.reads.settings(ctx, api, tutorID); err == nil {
			loc = settings.Location(s.defaultLoc)
		} else {
			s.logger.Debug("settings unavailable, grouping bookings in default timezone", zap.Error(err))
		}
	}

	resp := &dto.TutorBookingsResponse{
		Counts:   make(map[models.BookingStatus]int),
		Upcoming: upcoming(bookings, s.now(), upcomingLimit),
	}
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		resp.Counts[b.Status]++
		if query.Status == "" || string(b.Status) == query.Status {
			filtered = append(filtered, b)
		}
	}
	resp.Total = len(filtered)

	index := availability.NewBookingIndex(filtered, loc, s.occupancy)
	dates := index.Dates()
	if query.Order == "desc" {
		sort.Slice(dates, func(i, j int) bool { return dates[j].Before(dates[i]) })
	}
	resp.Groups = make([]dto.BookingGroup, 0, len(dates))
	for _, d := range dates {
		resp.Groups = append(resp.Groups, dto.BookingGroup{Date: d, Bookings: index.ForDate(d)})
	}
	return resp, nil
}

// StudentBookings splits the caller's bookings into upcoming and past.
func (s *BookingService) StudentBookings(ctx context.Context, sess *session.Session) (*dto.StudentBookingsResponse, error) {
	if _, err := requireUser(sess); err != nil {
		return nil, err
	}
	bookings, err := s.bind(sess).ListMyBookings(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	resp := &dto.StudentBookingsResponse{
		Upcoming: upcoming(bookings, now, 0),
		Past:     make([]models.Booking, 0),
	}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingConfirmed:
			resp.Confirmed++
		case models.BookingPending:
			resp.Pending++
		}
		if b.Status == models.BookingCancelled || b.ScheduledAt.Before(now) {
			resp.Past = append(resp.Past, b)
		}
	}
	sort.SliceStable(resp.Past, func(i, j int) bool { return resp.Past[i].ScheduledAt.After(resp.Past[j].ScheduledAt.Time) })
	return resp, nil
}

// Confirm confirms a pending booking.
func (s *BookingService) Confirm(ctx context.Context, sess *session.Session, id string) (*models.Booking, error) {
	return s.act(ctx, sess, ActionConfirm, id, func(api MarketplaceAPI) (*models.Booking, error) {
		return api.ConfirmBooking(ctx, id)
	})
}

// Cancel cancels a booking.
func (s *BookingService) Cancel(ctx context.Context, sess *session.Session, id string) (*models.Booking, error) {
	return s.act(ctx, sess, ActionCancel, id, func(api MarketplaceAPI) (*models.Booking, error) {
		return api.CancelBooking(ctx, id)
	})
}

// UpdateMeetLink sets the meeting link. An empty link is rejected locally.
func (s *BookingService) UpdateMeetLink(ctx context.Context, sess *session.Session, id string, req dto.MeetLinkRequest) (*models.Booking, error) {
	link := strings.TrimSpace(req.MeetingLink)
	if link == "" {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "meeting link is required")
	}
	if err := s.validator.Var(link, "url"); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "meeting link must be a valid URL")
	}
	return s.act(ctx, sess, ActionMeetLink, id, func(api MarketplaceAPI) (*models.Booking, error) {
		return api.UpdateMeetLink(ctx, id, link)
	})
}

func (s *BookingService) act(ctx context.Context, sess *session.Session, action, id string, call func(MarketplaceAPI) (*models.Booking, error)) (*models.Booking, error) {
	tutorID, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "booking id is required")
	}

	release, ok := s.guard.Acquire(id)
	if !ok {
		s.metrics.RecordInFlightRejection(action)
		return nil, appErrors.Clone(appErrors.ErrInFlight, "another action on this booking is still in progress")
	}
	defer release()

	booking, err := call(s.bind(sess))
	if err != nil {
		s.logger.Info("booking action failed", zap.String("action", action), zap.String("booking_id", id), zap.Error(err))
		return nil, err
	}
	s.reads.cache.InvalidateTutor(ctx, tutorID)
	return booking, nil
}

// upcoming returns non-cancelled bookings at or after now, soonest first.
// limit <= 0 means no limit.
func upcoming(bookings []models.Booking, now time.Time, limit int) []models.Booking {
	out := make([]models.Booking, 0)
	for _, b := range bookings {
		if b.Status != models.BookingCancelled && !b.ScheduledAt.Before(now) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt.Time) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
