package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceUpstreamCounters(t *testing.T) {
	m := NewMetricsService()
	m.ObserveUpstreamRequest("get_settings", http.StatusOK, 20*time.Millisecond)
	m.ObserveUpstreamRequest("get_settings", 0, 40*time.Millisecond)
	m.ObserveUpstreamRequest("confirm_booking", http.StatusBadGateway, 10*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/calendar/:year/:month", http.StatusOK, 50*time.Millisecond)
	m.RecordInFlightRejection(ActionConfirm)

	snap := m.Snapshot()
	assert.EqualValues(t, 3, snap.UpstreamCalls)
	assert.EqualValues(t, 2, snap.UpstreamFailures)
	assert.InDelta(t, 23.33, snap.AverageUpstreamDurationMs, 0.1)
	assert.EqualValues(t, 1, snap.RequestsTotal)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `upstream_requests_total{operation="get_settings",status="error"} 1`)
	assert.Contains(t, body, "booking_action_in_flight_rejections_total")
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveUpstreamRequest("x", 200, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	assert.Zero(t, m.Snapshot().UpstreamCalls)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
