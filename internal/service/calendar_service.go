package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/tutor-dashboard-api/internal/availability"
	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/export"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

// CalendarOptions configures classification and caching.
type CalendarOptions struct {
	Policy          availability.Policy
	Occupancy       availability.OccupancyPolicy
	DefaultLocation *time.Location
	CacheTTL        time.Duration
}

// CalendarService builds month calendars from marketplace data.
type CalendarService struct {
	bind       MarketplaceBinder
	reads      tutorReads
	resolver   *availability.Resolver
	occupancy  availability.OccupancyPolicy
	defaultLoc *time.Location
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	logger     *zap.Logger
	now        func() time.Time
}

// NewCalendarService constructs the service.
func NewCalendarService(bind MarketplaceBinder, cache *CacheService, opts CalendarOptions, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DefaultLocation == nil {
		opts.DefaultLocation = time.UTC
	}
	if opts.Policy.NonWorkingDays == nil {
		opts.Policy = availability.DefaultPolicy()
	}
	return &CalendarService{
		bind:       bind,
		reads:      tutorReads{cache: cache, ttl: opts.CacheTTL},
		resolver:   availability.NewResolver(opts.Policy),
		occupancy:  opts.Occupancy,
		defaultLoc: opts.DefaultLocation,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		logger:     logger,
		now:        time.Now,
	}
}

// Month resolves year/month locally from settings, blocked dates, and bookings.
func (s *CalendarService) Month(ctx context.Context, sess *session.Session, year, month int) (*dto.CalendarMonthResponse, error) {
	tutorID, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	snap, err := s.reads.snapshot(ctx, s.bind(sess), tutorID)
	if err != nil {
		return nil, err
	}

	loc := snap.settings.Location(s.defaultLoc)
	today := models.DateIn(s.now(), loc)
	index := availability.NewBookingIndex(snap.bookings, loc, s.occupancy)
	days, err := s.resolver.ResolveMonth(year, time.Month(month), snap.settings.WeeklySchedule, availability.NewBlockSet(snap.blocks), index, today)
	if err != nil {
		s.logger.Error("resolve month failed", zap.String("tutor_id", tutorID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal, "failed to build calendar")
	}

	return &dto.CalendarMonthResponse{
		Year:     year,
		Month:    month,
		Timezone: loc.String(),
		Today:    today,
		Leading:  leading(days),
		Source:   dto.CalendarSourceLocal,
		Days:     days,
	}, nil
}

// ServerMonth fetches the marketplace's own calendar and overlays the local
// blocks and bookings on top of it.
func (s *CalendarService) ServerMonth(ctx context.Context, sess *session.Session, year, month int) (*dto.CalendarMonthResponse, error) {
	tutorID, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	api := s.bind(sess)
	var (
		server   *models.MonthCalendar
		settings *models.AvailabilitySettings
		blocks   []models.BlockedDate
		bookings []models.Booking
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		server, err = api.GetCalendar(gctx, year, month)
		return err
	})
	g.Go(func() (err error) {
		settings, err = s.reads.settings(gctx, api, tutorID)
		return err
	})
	g.Go(func() (err error) {
		blocks, err = s.reads.blocks(gctx, api, tutorID)
		return err
	})
	g.Go(func() (err error) {
		bookings, err = s.reads.bookings(gctx, api)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if server.Year == 0 {
		server.Year, server.Month = year, month
	}
	loc := settings.Location(s.defaultLoc)
	today := models.DateIn(s.now(), loc)
	days, err := s.resolver.Overlay(server, availability.NewBlockSet(blocks), availability.NewBookingIndex(bookings, loc, s.occupancy), today)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal, "failed to build calendar")
	}

	return &dto.CalendarMonthResponse{
		Year:     server.Year,
		Month:    server.Month,
		Timezone: loc.String(),
		Today:    today,
		Leading:  leading(days),
		Source:   dto.CalendarSourceServer,
		Days:     days,
	}, nil
}

// Day returns the classification of date and its bookings.
func (s *CalendarService) Day(ctx context.Context, sess *session.Session, date models.Date) (*dto.CalendarDayResponse, error) {
	tutorID, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "date is required")
	}

	snap, err := s.reads.snapshot(ctx, s.bind(sess), tutorID)
	if err != nil {
		return nil, err
	}
	loc := snap.settings.Location(s.defaultLoc)
	index := availability.NewBookingIndex(snap.bookings, loc, s.occupancy)
	days, err := s.resolver.ResolveMonth(date.Year, date.Month, snap.settings.WeeklySchedule, availability.NewBlockSet(snap.blocks), index, models.DateIn(s.now(), loc))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal, "failed to build calendar")
	}

	resp := &dto.CalendarDayResponse{Bookings: index.ForDate(date)}
	for _, day := range days {
		if day != nil && day.Date == date {
			resp.Day = day
			break
		}
	}
	return resp, nil
}

// Export renders the locally resolved month as CSV or a Monday-first PDF grid.
func (s *CalendarService) Export(ctx context.Context, sess *session.Session, year, month int, format string) (*dto.ExportFile, error) {
	if format == "" {
		format = dto.ExportFormatPDF
	}
	if format != dto.ExportFormatCSV && format != dto.ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	cal, err := s.Month(ctx, sess, year, month)
	if err != nil {
		return nil, err
	}
	base := fmt.Sprintf("availability-%04d-%02d", year, month)

	if format == dto.ExportFormatCSV {
		content, err := s.csv.Render(calendarDataset(cal))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal, "failed to render csv")
		}
		return &dto.ExportFile{Filename: base + ".csv", ContentType: s.csv.ContentType(), Content: content}, nil
	}

	content, err := s.pdf.RenderGrid(calendarGrid(cal))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal, "failed to render pdf")
	}
	return &dto.ExportFile{Filename: base + ".pdf", ContentType: s.pdf.ContentType(), Content: content}, nil
}

// Invalidate drops cached reads for tutorID.
func (s *CalendarService) Invalidate(ctx context.Context, tutorID string) {
	s.reads.cache.InvalidateTutor(ctx, tutorID)
}

func validateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return appErrors.Clone(appErrors.ErrValidation, "month must be between 1 and 12")
	}
	if year < 1970 || year > 9999 {
		return appErrors.Clone(appErrors.ErrValidation, "year is out of range")
	}
	return nil
}

func leading(days []*models.CalendarDay) int {
	n := 0
	for n < len(days) && days[n] == nil {
		n++
	}
	return n
}

var stateShades = map[models.DayState]*export.Shade{
	models.DayBlocked:   {R: 248, G: 215, B: 218},
	models.DayBooked:    {R: 207, G: 226, B: 255},
	models.DayWeekend:   {R: 233, G: 236, B: 239},
	models.DayAvailable: {R: 209, G: 231, B: 221},
}

func calendarDataset(cal *dto.CalendarMonthResponse) export.Dataset {
	data := export.Dataset{Headers: []string{"date", "weekday", "state", "is_available", "is_blocked", "slots_count", "reason"}}
	for _, day := range cal.Days {
		if day == nil {
			continue
		}
		data.Rows = append(data.Rows, map[string]string{
			"date":         day.Date.String(),
			"weekday":      string(models.WeekdayOf(day.Date.Weekday())),
			"state":        string(day.State),
			"is_available": strconv.FormatBool(day.IsAvailable),
			"is_blocked":   strconv.FormatBool(day.IsBlocked),
			"slots_count":  strconv.Itoa(day.SlotsCount),
			"reason":       day.Reason,
		})
	}
	return data
}

func calendarGrid(cal *dto.CalendarMonthResponse) export.Grid {
	grid := export.Grid{
		Title:   fmt.Sprintf("%s %d (%s)", time.Month(cal.Month), cal.Year, cal.Timezone),
		Columns: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	}
	var row []*export.GridCell
	for _, day := range cal.Days {
		if day == nil {
			row = append(row, nil)
		} else {
			row = append(row, &export.GridCell{
				Label:  strconv.Itoa(day.Date.Day),
				Detail: describeDay(day),
				Fill:   stateShades[day.State],
			})
		}
		if len(row) == 7 {
			grid.Rows = append(grid.Rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		grid.Rows = append(grid.Rows, row)
	}
	for _, state := range []models.DayState{models.DayAvailable, models.DayBooked, models.DayBlocked, models.DayWeekend} {
		grid.Legend = append(grid.Legend, export.Legend{Label: string(state), Fill: *stateShades[state]})
	}
	return grid
}

func describeDay(day *models.CalendarDay) string {
	switch day.State {
	case models.DayBlocked:
		if day.Reason != "" {
			return "blocked: " + day.Reason
		}
		return "blocked"
	case models.DayAvailable, models.DayBooked:
		noun := "slots"
		if day.SlotsCount == 1 {
			noun = "slot"
		}
		return fmt.Sprintf("%s (%d %s)", day.State, day.SlotsCount, noun)
	case models.DayUnset:
		return ""
	default:
		return strings.ToLower(string(day.State))
	}
}
