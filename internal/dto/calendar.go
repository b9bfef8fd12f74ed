package dto

import "github.com/noah-isme/tutor-dashboard-api/internal/models"

// Calendar sources.
const (
	CalendarSourceLocal  = "local"
	CalendarSourceServer = "server"
)

// Export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// CalendarMonthResponse is a month of classified days. Days starts with
// Leading null entries so the first date falls in its Monday-first column.
type CalendarMonthResponse struct {
	Year     int                   `json:"year"`
	Month    int                   `json:"month"`
	Timezone string                `json:"timezone"`
	Today    models.Date           `json:"today"`
	Leading  int                   `json:"leading"`
	Source   string                `json:"source"`
	Days     []*models.CalendarDay `json:"days"`
}

// CalendarDayResponse details one date with its bookings.
type CalendarDayResponse struct {
	Day      *models.CalendarDay `json:"day"`
	Bookings []models.Booking    `json:"bookings"`
}

// CalendarExportQuery selects the export format.
type CalendarExportQuery struct {
	Format string `form:"format" validate:"omitempty,oneof=csv pdf"`
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
