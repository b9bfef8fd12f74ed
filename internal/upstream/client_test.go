package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	"github.com/noah-isme/tutor-dashboard-api/pkg/config"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/middleware/requestid"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

type recordingObserver struct {
	mu    sync.Mutex
	calls map[string]int
}

func (r *recordingObserver) ObserveUpstreamRequest(op string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = map[string]int{}
	}
	r.calls[op] = status
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithHTTPClient(srv.Client())}, opts...)
	client, err := New(config.UpstreamConfig{BaseURL: srv.URL + "/api", Timeout: time.Second}, opts...)
	require.NoError(t, err)

	sess := session.New()
	sess.Init("tok-123", "tutor-1", "tutor@example.com", session.RoleTutor, time.Time{})
	return client, sess
}

func TestGetSettingsSendsBearerAndRequestID(t *testing.T) {
	obs := &recordingObserver{}
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/availability/settings", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get(requestid.Header))
		_, _ = w.Write([]byte(`{"id":"s1","tutor_id":"tutor-1","timezone":"Asia/Jakarta","weekly_schedule":{"monday":[{"start_time":"09:00","end_time":"17:00"}]}}`))
	}, WithObserver(obs))

	ctx := requestid.WithContext(context.Background(), "req-1")
	settings, err := client.Session(sess).GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", settings.Timezone)
	assert.Len(t, settings.WeeklySchedule[models.Monday], 1)
	assert.Equal(t, http.StatusOK, obs.calls["get_settings"])
}

func TestClearedSessionSendsNoToken(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
	})
	sess.Clear()

	_, err := client.Session(sess).ListTutorBookings(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))
	assert.Equal(t, "Not authenticated", appErrors.FromError(err).Detail)
}

func TestAddBlockedDateRejectionCarriesDetail(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2024-03-11", body["date"])
		assert.Equal(t, "Leave", body["reason"])
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Date already has bookings"}`))
	})

	_, err := client.Session(sess).AddBlockedDate(context.Background(), models.NewDate(2024, time.March, 11), "Leave")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstreamRejected.Code, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, appErrors.KindRejected, appErr.Kind)
	assert.Equal(t, "Date already has bookings", appErr.Detail)
}

func TestValidationDetailListIsJoined(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","amount"],"msg":"must be positive"},{"loc":["body"],"msg":"bad method"}]}`))
	})

	_, err := client.Session(sess).RequestWithdrawal(context.Background(), models.WithdrawalRequest{Amount: 1})
	require.Error(t, err)
	assert.Equal(t, "must be positive; bad method", appErrors.FromError(err).Detail)
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	obs := &recordingObserver{}
	client, err := New(config.UpstreamConfig{BaseURL: "http://127.0.0.1:1/api", Timeout: 200 * time.Millisecond}, WithObserver(obs))
	require.NoError(t, err)

	_, err = client.Session(session.New()).GetSettings(context.Background())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstreamUnavailable.Code, appErr.Code)
	assert.Equal(t, appErrors.KindTransport, appErr.Kind)
	assert.Equal(t, 0, obs.calls["get_settings"])
}

func TestServerErrorIsUnavailable(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := client.Session(sess).RemoveBlockedDate(context.Background(), "b1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrUpstreamUnavailable))
}

func TestBookingActionsHitExpectedRoutes(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]string{}
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen[r.Method+" "+r.URL.Path] = r.URL.RawQuery
		mu.Unlock()
		switch r.URL.Path {
		case "/api/admin/bookings":
			_, _ = w.Write([]byte(`[]`))
		default:
			_, _ = w.Write([]byte(`{"id":"bk-1","status":"confirmed","meeting_link":"https://meet.example/x"}`))
		}
	})
	api := client.Session(sess)
	ctx := context.Background()

	b, err := api.ConfirmBooking(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b.Status)
	_, err = api.CancelBooking(ctx, "bk-1")
	require.NoError(t, err)
	b, err = api.UpdateMeetLink(ctx, "bk-1", "https://meet.example/x")
	require.NoError(t, err)
	assert.Equal(t, "https://meet.example/x", b.MeetingLink)
	_, err = api.AdminBookings(ctx, models.BookingPending, 0, 50)
	require.NoError(t, err)
	_, err = api.GetCalendar(ctx, 2024, 3)
	require.NoError(t, err)

	assert.Contains(t, seen, "POST /api/bookings/bk-1/confirm")
	assert.Contains(t, seen, "POST /api/bookings/bk-1/cancel")
	assert.Contains(t, seen, "PUT /api/bookings/bk-1/meet-link")
	assert.Contains(t, seen, "GET /api/availability/calendar/2024/3")
	assert.Equal(t, "limit=50&status=pending", seen["GET /api/admin/bookings"])
}

func TestPingUsesHealthEndpointWithoutCredentials(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	require.NoError(t, client.Ping(context.Background()))
}

func TestNewRejectsRelativeBaseURL(t *testing.T) {
	_, err := New(config.UpstreamConfig{BaseURL: "/api"})
	require.Error(t, err)
}

func TestMeResolvesCaller(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"u-9","email":"tutor@example.com","full_name":"Tia Tutor","role":"tutor","is_active":true}`))
	})

	user, err := client.Session(sess).Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u-9", user.ID)
	assert.Equal(t, "tutor", user.Role)
}

func TestNaiveMarketplaceTimestampsDecode(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/bookings/tutor/my-bookings":
			_, _ = w.Write([]byte(`[{"id":"b1","scheduled_at":"2024-03-11T10:00:00","status":"confirmed","created_at":"2024-03-01T08:15:30.123456"}]`))
		case "/api/availability/settings":
			_, _ = w.Write([]byte(`{"id":"s1","timezone":"UTC","weekly_schedule":{},"created_at":"2024-03-01T08:15:30.123456","updated_at":"2024-03-02T09:00:00"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	api := client.Session(sess)

	bookings, err := api.ListTutorBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, time.Date(2024, time.March, 11, 10, 0, 0, 0, time.UTC), bookings[0].ScheduledAt.Time)
	assert.Equal(t, models.NewDate(2024, time.March, 11), bookings[0].ScheduledAt.CalendarDate())
	assert.Equal(t, 123456000, bookings[0].CreatedAt.Nanosecond())

	settings, err := api.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2024, settings.UpdatedAt.Year())
}

func TestEmptySuccessBodyIsAnError(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	_, err := client.Session(sess).AddBlockedDate(context.Background(), models.NewDate(2024, time.March, 4), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrUpstreamUnavailable))
}
