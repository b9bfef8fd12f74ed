package models

// BookingStatus is the lifecycle state owned by the booking subsystem.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking is read-only to the dashboards apart from the tutor actions.
type Booking struct {
	ID              string        `json:"id"`
	StudentID       string        `json:"student_id"`
	TutorID         string        `json:"tutor_id"`
	StudentName     string        `json:"student_name,omitempty"`
	TutorName       string        `json:"tutor_name,omitempty"`
	Subject         string        `json:"subject"`
	SessionType     string        `json:"session_type"`
	ScheduledAt     Timestamp     `json:"scheduled_at"`
	DurationMinutes int           `json:"duration_minutes"`
	Price           float64       `json:"price"`
	Currency        string        `json:"currency"`
	Status          BookingStatus `json:"status"`
	Notes           string        `json:"notes,omitempty"`
	MeetingLink     string        `json:"meeting_link,omitempty"`
	CreatedAt       Timestamp     `json:"created_at"`
}

// AdminBooking is the admin console projection of a booking.
type AdminBooking struct {
	ID              string        `json:"id"`
	StudentID       string        `json:"student_id"`
	StudentName     string        `json:"student_name"`
	StudentEmail    string        `json:"student_email"`
	TutorID         string        `json:"tutor_id"`
	TutorName       string        `json:"tutor_name"`
	TutorEmail      string        `json:"tutor_email"`
	Subject         string        `json:"subject"`
	ScheduledAt     Timestamp     `json:"scheduled_at"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          BookingStatus `json:"status"`
	Price           float64       `json:"price"`
	MeetingLink     string        `json:"meeting_link,omitempty"`
	CreatedAt       Timestamp     `json:"created_at"`
}

// AdminStats is the admin console headline counters.
type AdminStats struct {
	TotalUsers           int     `json:"total_users"`
	TotalStudents        int     `json:"total_students"`
	TotalTutors          int     `json:"total_tutors"`
	TotalBookings        int     `json:"total_bookings"`
	PendingBookings      int     `json:"pending_bookings"`
	ConfirmedBookings    int     `json:"confirmed_bookings"`
	CompletedBookings    int     `json:"completed_bookings"`
	CancelledBookings    int     `json:"cancelled_bookings"`
	RevenueTotal         float64 `json:"revenue_total"`
	RevenueThisMonth     float64 `json:"revenue_this_month"`
	NewUsersThisWeek     int     `json:"new_users_this_week"`
	NewBookingsThisWeek  int     `json:"new_bookings_this_week"`
}
