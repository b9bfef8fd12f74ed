package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/export"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

// AdminService backs the admin console.
type AdminService struct {
	bind      MarketplaceBinder
	metrics   *MetricsService
	validator *validator.Validate
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
	now       func() time.Time
}

// NewAdminService constructs the service.
func NewAdminService(bind MarketplaceBinder, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *AdminService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{
		bind:      bind,
		metrics:   metrics,
		validator: validate,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
		now:       time.Now,
	}
}

// Stats passes the platform counters through.
func (s *AdminService) Stats(ctx context.Context, sess *session.Session) (*models.AdminStats, error) {
	if _, err := requireUser(sess); err != nil {
		return nil, err
	}
	return s.bind(sess).AdminStats(ctx)
}

// SystemMetrics reports gateway counters.
func (s *AdminService) SystemMetrics() dto.SystemMetrics {
	return s.metrics.Snapshot()
}

// Bookings lists bookings filtered by status and search, newest first.
func (s *AdminService) Bookings(ctx context.Context, sess *session.Session, query dto.AdminBookingsQuery) (*dto.AdminBookingsResponse, error) {
	if _, err := requireUser(sess); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	status := models.BookingStatus(query.Status)
	all, err := s.bind(sess).AdminBookings(ctx, status, query.Skip, query.Limit)
	if err != nil {
		return nil, err
	}
	filtered := filterAdminBookings(all, status, query.Search)
	return &dto.AdminBookingsResponse{Bookings: filtered, Total: len(filtered)}, nil
}

// UpdateBookingStatus forces a booking into a new status.
func (s *AdminService) UpdateBookingStatus(ctx context.Context, sess *session.Session, id string, req dto.AdminStatusRequest) (*models.AdminBooking, error) {
	if _, err := requireUser(sess); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	if strings.TrimSpace(id) == "" {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "booking id is required")
	}
	return s.bind(sess).AdminUpdateBookingStatus(ctx, id, models.BookingStatus(req.Status))
}

// ExportBookings renders the filtered list as CSV or PDF.
func (s *AdminService) ExportBookings(ctx context.Context, sess *session.Session, query dto.AdminBookingsQuery) (*dto.ExportFile, error) {
	format := query.Format
	if format == "" {
		format = dto.ExportFormatCSV
	}
	list, err := s.Bookings(ctx, sess, query)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{Headers: []string{"id", "scheduled_at", "status", "student", "tutor", "subject", "duration_minutes", "price"}}
	for _, b := range list.Bookings {
		data.Rows = append(data.Rows, map[string]string{
			"id":               b.ID,
			"scheduled_at":     b.ScheduledAt.UTC().Format(time.RFC3339),
			"status":           string(b.Status),
			"student":          b.StudentName,
			"tutor":            b.TutorName,
			"subject":          b.Subject,
			"duration_minutes": strconv.Itoa(b.DurationMinutes),
			"price":            strconv.FormatFloat(b.Price, 'f', 2, 64),
		})
	}

	stamp := s.now().UTC().Format("20060102")
	if format == dto.ExportFormatPDF {
		content, err := s.pdf.Render(data, fmt.Sprintf("Bookings (%d)", len(data.Rows)))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal, "failed to render pdf")
		}
		return &dto.ExportFile{Filename: "bookings-" + stamp + ".pdf", ContentType: s.pdf.ContentType(), Content: content}, nil
	}
	content, err := s.csv.Render(data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal, "failed to render csv")
	}
	return &dto.ExportFile{Filename: "bookings-" + stamp + ".csv", ContentType: s.csv.ContentType(), Content: content}, nil
}

func filterAdminBookings(all []models.AdminBooking, status models.BookingStatus, search string) []models.AdminBooking {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.AdminBooking, 0, len(all))
	for _, b := range all {
		if status != "" && b.Status != status {
			continue
		}
		if needle != "" && !matchesSearch(b, needle) {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt.Time) })
	return out
}

func matchesSearch(b models.AdminBooking, needle string) bool {
	for _, field := range []string{b.StudentName, b.StudentEmail, b.TutorName, b.TutorEmail, b.Subject} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
