package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	"github.com/noah-isme/tutor-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

type envelopeProbe struct {
	Data  json.RawMessage  `json:"data"`
	Error *appErrors.Error `json:"error"`
	Meta  struct {
		Notification *struct {
			Type           string `json:"type"`
			Text           string `json:"text"`
			DismissAfterMs int64  `json:"dismiss_after_ms"`
		} `json:"notification"`
	} `json:"meta"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelopeProbe {
	t.Helper()
	var body envelopeProbe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newGinContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func withSession(c *gin.Context, role session.Role) {
	sess := session.New()
	sess.Init("tok", "user-1", "user@example.com", role, time.Time{})
	c.Set(session.ContextKey, sess)
}

type calendarServiceMock struct {
	year, month int
	monthErr    error
	file        *dto.ExportFile
	format      string
}

func (m *calendarServiceMock) Month(_ context.Context, _ *session.Session, year, month int) (*dto.CalendarMonthResponse, error) {
	m.year, m.month = year, month
	if m.monthErr != nil {
		return nil, m.monthErr
	}
	return &dto.CalendarMonthResponse{Year: year, Month: month, Source: dto.CalendarSourceLocal}, nil
}

func (m *calendarServiceMock) ServerMonth(_ context.Context, _ *session.Session, year, month int) (*dto.CalendarMonthResponse, error) {
	return &dto.CalendarMonthResponse{Year: year, Month: month, Source: dto.CalendarSourceServer}, nil
}

func (m *calendarServiceMock) Day(_ context.Context, _ *session.Session, date models.Date) (*dto.CalendarDayResponse, error) {
	return &dto.CalendarDayResponse{Day: &models.CalendarDay{Date: date}}, nil
}

func (m *calendarServiceMock) Export(_ context.Context, _ *session.Session, _, _ int, format string) (*dto.ExportFile, error) {
	m.format = format
	return m.file, nil
}

func TestCalendarHandlerMonth(t *testing.T) {
	mock := &calendarServiceMock{}
	h := NewCalendarHandler(mock)

	c, w := newGinContext(http.MethodGet, "/calendar/2024/3", nil)
	c.Params = gin.Params{{Key: "year", Value: "2024"}, {Key: "month", Value: "3"}}
	withSession(c, session.RoleTutor)
	h.Month(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2024, mock.year)
	assert.Equal(t, 3, mock.month)

	c, w = newGinContext(http.MethodGet, "/calendar/2024/march", nil)
	c.Params = gin.Params{{Key: "year", Value: "2024"}, {Key: "month", Value: "march"}}
	h.Month(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarHandlerPropagatesUpstreamError(t *testing.T) {
	h := NewCalendarHandler(&calendarServiceMock{monthErr: appErrors.ErrUpstreamUnavailable})
	c, w := newGinContext(http.MethodGet, "/calendar/2024/3", nil)
	c.Params = gin.Params{{Key: "year", Value: "2024"}, {Key: "month", Value: "3"}}
	h.Month(c)

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", decode(t, w).Error.Code)
}

func TestCalendarHandlerDayRejectsBadDate(t *testing.T) {
	h := NewCalendarHandler(&calendarServiceMock{})
	c, w := newGinContext(http.MethodGet, "/calendar/day/03-04-2024", nil)
	c.Params = gin.Params{{Key: "date", Value: "03-04-2024"}}
	h.Day(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarHandlerExportDownload(t *testing.T) {
	mock := &calendarServiceMock{file: &dto.ExportFile{Filename: "calendar-2024-03.csv", ContentType: "text/csv; charset=utf-8", Content: []byte("date\n")}}
	h := NewCalendarHandler(mock)

	c, w := newGinContext(http.MethodGet, "/calendar/2024/3/export?format=csv", nil)
	c.Params = gin.Params{{Key: "year", Value: "2024"}, {Key: "month", Value: "3"}}
	h.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", mock.format)
	assert.Equal(t, `attachment; filename="calendar-2024-03.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "date\n", w.Body.String())

	c, w = newGinContext(http.MethodGet, "/calendar/2024/3/export?format=xls", nil)
	c.Params = gin.Params{{Key: "year", Value: "2024"}, {Key: "month", Value: "3"}}
	h.Export(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type bookingServiceMock struct {
	confirmErr error
	meetErr    error
}

func (m *bookingServiceMock) TutorBookings(context.Context, *session.Session, dto.TutorBookingsQuery) (*dto.TutorBookingsResponse, error) {
	return &dto.TutorBookingsResponse{}, nil
}

func (m *bookingServiceMock) StudentBookings(context.Context, *session.Session) (*dto.StudentBookingsResponse, error) {
	return &dto.StudentBookingsResponse{}, nil
}

func (m *bookingServiceMock) Confirm(_ context.Context, _ *session.Session, id string) (*models.Booking, error) {
	if m.confirmErr != nil {
		return nil, m.confirmErr
	}
	return &models.Booking{ID: id, Status: models.BookingConfirmed}, nil
}

func (m *bookingServiceMock) Cancel(_ context.Context, _ *session.Session, id string) (*models.Booking, error) {
	return &models.Booking{ID: id, Status: models.BookingCancelled}, nil
}

func (m *bookingServiceMock) UpdateMeetLink(_ context.Context, _ *session.Session, id string, req dto.MeetLinkRequest) (*models.Booking, error) {
	if m.meetErr != nil {
		return nil, m.meetErr
	}
	return &models.Booking{ID: id, MeetingLink: req.MeetingLink}, nil
}

func TestBookingHandlerConfirmNotification(t *testing.T) {
	h := NewBookingHandler(&bookingServiceMock{}, DefaultNotices)
	c, w := newGinContext(http.MethodPost, "/bookings/bk-1/confirm", nil)
	c.Params = gin.Params{{Key: "id", Value: "bk-1"}}
	h.Confirm(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.NotNil(t, body.Meta.Notification)
	assert.Equal(t, "success", body.Meta.Notification.Type)
	assert.EqualValues(t, 4000, body.Meta.Notification.DismissAfterMs)
}

func TestBookingHandlerInFlightConflict(t *testing.T) {
	inFlight := appErrors.Clone(appErrors.ErrInFlight, "another action on this booking is still in progress")
	h := NewBookingHandler(&bookingServiceMock{confirmErr: inFlight}, DefaultNotices)
	c, w := newGinContext(http.MethodPost, "/bookings/bk-1/confirm", nil)
	c.Params = gin.Params{{Key: "id", Value: "bk-1"}}
	h.Confirm(c)

	require.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.Equal(t, "IN_FLIGHT", body.Error.Code)
	assert.Equal(t, "error", body.Meta.Notification.Type)
	assert.EqualValues(t, 3000, body.Meta.Notification.DismissAfterMs)
}

func TestBookingHandlerMeetLinkBadBody(t *testing.T) {
	h := NewBookingHandler(&bookingServiceMock{}, DefaultNotices)
	c, w := newGinContext(http.MethodPut, "/bookings/bk-1/meet-link", []byte(`{"meeting_link":`))
	c.Params = gin.Params{{Key: "id", Value: "bk-1"}}
	h.UpdateMeetLink(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please enter a meeting link", decode(t, w).Meta.Notification.Text)
}

type scheduleServiceMock struct {
	saveErr   error
	discarded bool
	removed   struct {
		day   string
		index int
	}
}

func (m *scheduleServiceMock) Settings(context.Context, *session.Session) (*models.AvailabilitySettings, error) {
	return &models.AvailabilitySettings{}, nil
}

func (m *scheduleServiceMock) UpdateSettings(context.Context, *session.Session, models.UpdateSettingsRequest) (*models.AvailabilitySettings, error) {
	return &models.AvailabilitySettings{}, nil
}

func (m *scheduleServiceMock) Draft(context.Context, *session.Session) (*dto.ScheduleDraftResponse, error) {
	return &dto.ScheduleDraftResponse{}, nil
}

func (m *scheduleServiceMock) AddSlot(context.Context, *session.Session, dto.AddSlotRequest) (*dto.ScheduleDraftResponse, error) {
	return &dto.ScheduleDraftResponse{}, nil
}

func (m *scheduleServiceMock) RemoveSlot(_ context.Context, _ *session.Session, day string, index int) (*dto.ScheduleDraftResponse, error) {
	m.removed.day, m.removed.index = day, index
	return &dto.ScheduleDraftResponse{}, nil
}

func (m *scheduleServiceMock) UpdateSlot(context.Context, *session.Session, string, int, dto.UpdateSlotRequest) (*dto.ScheduleDraftResponse, error) {
	return &dto.ScheduleDraftResponse{}, nil
}

func (m *scheduleServiceMock) Replace(context.Context, *session.Session, dto.ReplaceScheduleRequest) (*dto.ScheduleDraftResponse, error) {
	return &dto.ScheduleDraftResponse{}, nil
}

func (m *scheduleServiceMock) Save(context.Context, *session.Session) (*service.ScheduleSaveResult, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	return &service.ScheduleSaveResult{}, nil
}

func (m *scheduleServiceMock) Discard(context.Context, *session.Session) error {
	m.discarded = true
	return nil
}

func TestScheduleHandlerSaveNotifications(t *testing.T) {
	h := NewScheduleHandler(&scheduleServiceMock{}, DefaultNotices)
	c, w := newGinContext(http.MethodPost, "/availability/schedule/draft/save", nil)
	h.Save(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Schedule saved successfully!", decode(t, w).Meta.Notification.Text)

	rejected := appErrors.Clone(appErrors.ErrUpstreamRejected, "")
	rejected.Detail = "end_time must be after start_time"
	h = NewScheduleHandler(&scheduleServiceMock{saveErr: rejected}, DefaultNotices)
	c, w = newGinContext(http.MethodPost, "/availability/schedule/draft/save", nil)
	h.Save(c)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "end_time must be after start_time", decode(t, w).Meta.Notification.Text)
}

func TestScheduleHandlerRemoveSlotParams(t *testing.T) {
	mock := &scheduleServiceMock{}
	h := NewScheduleHandler(mock, DefaultNotices)
	c, w := newGinContext(http.MethodDelete, "/availability/schedule/draft/slots/monday/1", nil)
	c.Params = gin.Params{{Key: "day", Value: "monday"}, {Key: "index", Value: "1"}}
	h.RemoveSlot(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "monday", mock.removed.day)
	assert.Equal(t, 1, mock.removed.index)

	c, w = newGinContext(http.MethodDelete, "/availability/schedule/draft/slots/monday/x", nil)
	c.Params = gin.Params{{Key: "day", Value: "monday"}, {Key: "index", Value: "x"}}
	h.RemoveSlot(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouterEnforcesRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	role := session.RoleStudent
	fakeAuth := func(c *gin.Context) {
		sess := session.New()
		sess.Init("tok", "user-1", "", role, time.Time{})
		c.Set(session.ContextKey, sess)
		c.Next()
	}
	Handlers{
		Calendar:     NewCalendarHandler(&calendarServiceMock{}),
		Schedule:     NewScheduleHandler(&scheduleServiceMock{}, DefaultNotices),
		BlockedDates: NewBlockedDateHandler(nil, DefaultNotices),
		Bookings:     NewBookingHandler(&bookingServiceMock{}, DefaultNotices),
		Earnings:     NewEarningsHandler(nil, DefaultNotices),
		Admin:        NewAdminHandler(nil, DefaultNotices),
	}.Register(r.Group("/api/v1"), fakeAuth)

	serve := func(method, path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusForbidden, serve(http.MethodGet, "/api/v1/calendar/2024/3"))
	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/api/v1/bookings/student"))
	assert.Equal(t, http.StatusOK, serve(http.MethodPost, "/api/v1/bookings/bk-1/cancel"))

	role = session.RoleTutor
	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/api/v1/calendar/2024/3"))
	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/api/v1/calendar/day/2024-03-04"))
	assert.Equal(t, http.StatusForbidden, serve(http.MethodGet, "/api/v1/admin/stats"))
}

func TestMetricsHandlerReady(t *testing.T) {
	h := NewMetricsHandler(service.NewMetricsService(), map[string]ReadinessCheck{
		"upstream": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("connection refused") },
	})
	c, w := newGinContext(http.MethodGet, "/ready", nil)
	h.Ready(c)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")

	h = NewMetricsHandler(nil, nil)
	c, w = newGinContext(http.MethodGet, "/ready", nil)
	h.Ready(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
