package dto

import "github.com/noah-isme/tutor-dashboard-api/internal/models"

// TutorBookingsQuery filters the tutor booking list.
type TutorBookingsQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Order  string `form:"order" validate:"omitempty,oneof=asc desc"`
}

// BookingGroup holds the bookings of one tutor-local date.
type BookingGroup struct {
	Date     models.Date      `json:"date"`
	Bookings []models.Booking `json:"bookings"`
}

// TutorBookingsResponse is the tutor booking overview.
type TutorBookingsResponse struct {
	Groups   []BookingGroup               `json:"groups"`
	Upcoming []models.Booking             `json:"upcoming"`
	Counts   map[models.BookingStatus]int `json:"counts"`
	Total    int                          `json:"total"`
}

// MeetLinkRequest sets a meeting link.
type MeetLinkRequest struct {
	MeetingLink string `json:"meeting_link"`
}

// StudentBookingsResponse splits a student's bookings.
type StudentBookingsResponse struct {
	Upcoming  []models.Booking `json:"upcoming"`
	Past      []models.Booking `json:"past"`
	Confirmed int              `json:"confirmed"`
	Pending   int              `json:"pending"`
}
