package availability

import (
	"fmt"
	"time"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
)

// MonthGrid lays out a month on a Monday-first seven column grid.
type MonthGrid struct {
	Year    int
	Month   time.Month
	Leading int
	Dates   []models.Date
}

// NewMonthGrid computes the grid for year/month.
func NewMonthGrid(year int, month time.Month) (MonthGrid, error) {
	if month < time.January || month > time.December {
		return MonthGrid{}, fmt.Errorf("month %d out of range", int(month))
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := DaysIn(year, month)
	grid := MonthGrid{
		Year:    year,
		Month:   month,
		Leading: LeadingBlanks(first.Weekday()),
		Dates:   make([]models.Date, 0, days),
	}
	for d := 1; d <= days; d++ {
		grid.Dates = append(grid.Dates, models.Date{Year: year, Month: month, Day: d})
	}
	return grid, nil
}

// DaysIn returns the number of days in month, leap years included.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks is (ISO weekday - 1) mod 7 for the first of the month.
func LeadingBlanks(first time.Weekday) int {
	return (int(first) + 6) % 7
}

// Weeks splits the padded grid into rows of seven. The last row is not
// padded.
func (g MonthGrid) Weeks() [][]*models.Date {
	cells := make([]*models.Date, g.Leading, g.Leading+len(g.Dates))
	for i := range g.Dates {
		cells = append(cells, &g.Dates[i])
	}
	var weeks [][]*models.Date
	for len(cells) > 0 {
		n := 7
		if len(cells) < n {
			n = len(cells)
		}
		weeks = append(weeks, cells[:n])
		cells = cells[n:]
	}
	return weeks
}
