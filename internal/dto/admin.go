package dto

import (
	"time"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
)

// AdminBookingsQuery filters the admin booking list.
type AdminBookingsQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Search string `form:"search" validate:"max=100"`
	Skip   int    `form:"skip" validate:"min=0"`
	Limit  int    `form:"limit" validate:"min=0,max=500"`
	Format string `form:"format" validate:"omitempty,oneof=csv pdf"`
}

// AdminBookingsResponse is the filtered list.
type AdminBookingsResponse struct {
	Bookings []models.AdminBooking `json:"bookings"`
	Total    int                   `json:"total"`
}

// AdminStatusRequest forces a booking status.
type AdminStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// SystemMetrics is a lightweight snapshot of gateway health counters.
type SystemMetrics struct {
	CacheHitRatio             float64   `json:"cache_hit_ratio"`
	CacheHits                 uint64    `json:"cache_hits"`
	CacheMisses               uint64    `json:"cache_misses"`
	RequestsTotal             uint64    `json:"requests_total"`
	AverageRequestDurationMs  float64   `json:"average_request_duration_ms"`
	UpstreamCalls             uint64    `json:"upstream_calls"`
	UpstreamFailures          uint64    `json:"upstream_failures"`
	AverageUpstreamDurationMs float64   `json:"average_upstream_duration_ms"`
	Goroutines                int       `json:"goroutines"`
	GeneratedAt               time.Time `json:"generated_at"`
}
