package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:8000/api", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, []string{"saturday", "sunday"}, cfg.Calendar.NonWorkingDays)
	assert.True(t, cfg.Calendar.CancelledOccupies)
	assert.False(t, cfg.Calendar.TutorLocalBookingDates)
	assert.Equal(t, 3*time.Second, cfg.Notifications.DismissAfter)
	assert.Equal(t, 4*time.Second, cfg.Notifications.ConfirmedBooking)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.test/api/")
	t.Setenv("CALENDAR_NON_WORKING_DAYS", "Friday, Saturday")
	t.Setenv("CALENDAR_CANCELLED_OCCUPIES", "false")
	t.Setenv("CALENDAR_TUTOR_LOCAL_BOOKING_DATES", "true")
	t.Setenv("CALENDAR_CACHE_TTL", "not-a-duration")
	t.Setenv("OTEL_SAMPLING_RATIO", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.test/api", cfg.Upstream.BaseURL)
	assert.Equal(t, []string{"friday", "saturday"}, cfg.Calendar.NonWorkingDays)
	assert.False(t, cfg.Calendar.CancelledOccupies)
	assert.True(t, cfg.Calendar.TutorLocalBookingDates)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
}
