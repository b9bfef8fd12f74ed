package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Upstream      UpstreamConfig
	Redis         RedisConfig
	JWT           JWTConfig
	CORS          CORSConfig
	Log           LogConfig
	Calendar      CalendarConfig
	Cache         CacheConfig
	Drafts        DraftConfig
	Notifications NotificationConfig
	Tracing       TracingConfig
}

// UpstreamConfig points the gateway at the marketplace REST API.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CalendarConfig controls the availability classification policy.
type CalendarConfig struct {
	NonWorkingDays    []string
	CancelledOccupies bool
	// TutorLocalBookingDates moves bookings onto their date in the tutor
	// timezone rather than the date written in scheduled_at.
	TutorLocalBookingDates bool
	DefaultTimezone        string
	DefaultSlotStart       string
	DefaultSlotEnd         string
}

// CacheConfig governs read-through caching of upstream reads.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// DraftConfig governs weekly schedule drafts kept between edits.
type DraftConfig struct {
	TTL time.Duration
}

// NotificationConfig sets how long transient notifications stay on screen.
type NotificationConfig struct {
	DismissAfter     time.Duration
	ConfirmedBooking time.Duration
}

// TracingConfig configures OpenTelemetry export.
type TracingConfig struct {
	Enabled      bool
	ServiceName  string
	OTLPEndpoint string
	SampleRatio  float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Upstream = UpstreamConfig{
		BaseURL: strings.TrimRight(v.GetString("UPSTREAM_BASE_URL"), "/"),
		Timeout: parseDuration(v.GetString("UPSTREAM_TIMEOUT"), 10*time.Second),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret: v.GetString("JWT_SECRET"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Calendar = CalendarConfig{
		NonWorkingDays:         splitAndTrim(strings.ToLower(v.GetString("CALENDAR_NON_WORKING_DAYS"))),
		CancelledOccupies:      v.GetBool("CALENDAR_CANCELLED_OCCUPIES"),
		TutorLocalBookingDates: v.GetBool("CALENDAR_TUTOR_LOCAL_BOOKING_DATES"),
		DefaultTimezone:        v.GetString("CALENDAR_DEFAULT_TIMEZONE"),
		DefaultSlotStart:       v.GetString("CALENDAR_DEFAULT_SLOT_START"),
		DefaultSlotEnd:         v.GetString("CALENDAR_DEFAULT_SLOT_END"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CACHE"),
		TTL:     parseDuration(v.GetString("CALENDAR_CACHE_TTL"), time.Minute),
	}

	cfg.Drafts = DraftConfig{
		TTL: parseDuration(v.GetString("DRAFT_TTL"), 24*time.Hour),
	}

	cfg.Notifications = NotificationConfig{
		DismissAfter:     parseDuration(v.GetString("NOTIFICATION_TTL"), 3*time.Second),
		ConfirmedBooking: parseDuration(v.GetString("NOTIFICATION_CONFIRM_TTL"), 4*time.Second),
	}

	cfg.Tracing = TracingConfig{
		Enabled:      v.GetBool("OTEL_ENABLED"),
		ServiceName:  v.GetString("OTEL_SERVICE_NAME"),
		OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		SampleRatio:  clampRatio(v.GetFloat64("OTEL_SAMPLING_RATIO")),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("UPSTREAM_BASE_URL", "http://localhost:8000/api")
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CALENDAR_NON_WORKING_DAYS", "saturday,sunday")
	v.SetDefault("CALENDAR_CANCELLED_OCCUPIES", true)
	v.SetDefault("CALENDAR_TUTOR_LOCAL_BOOKING_DATES", false)
	v.SetDefault("CALENDAR_DEFAULT_TIMEZONE", "UTC")
	v.SetDefault("CALENDAR_DEFAULT_SLOT_START", "09:00")
	v.SetDefault("CALENDAR_DEFAULT_SLOT_END", "17:00")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CALENDAR_CACHE_TTL", "1m")
	v.SetDefault("DRAFT_TTL", "24h")
	v.SetDefault("NOTIFICATION_TTL", "3s")
	v.SetDefault("NOTIFICATION_CONFIRM_TTL", "4s")

	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SERVICE_NAME", "tutor-dashboard-api")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	v.SetDefault("OTEL_SAMPLING_RATIO", 1.0)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func clampRatio(ratio float64) float64 {
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
