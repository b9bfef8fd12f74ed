package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
)

type dayDiff struct {
	Date   models.Date
	Field  string
	Local  string
	Server string
}

type monthReport struct {
	Year, Month int
	Diffs       []dayDiff
	Err         error
}

// compareMonth reports dates whose availability, block flag or slot count
// differ between the locally resolved days and the marketplace calendar.
// Dates missing on either side are reported under the "missing" field.
func compareMonth(local []*models.CalendarDay, server []models.CalendarDay) []dayDiff {
	serverByDate := make(map[models.Date]models.CalendarDay, len(server))
	for _, d := range server {
		serverByDate[d.Date] = d
	}

	var diffs []dayDiff
	seen := make(map[models.Date]bool, len(local))
	for _, l := range local {
		if l == nil {
			continue
		}
		seen[l.Date] = true
		s, ok := serverByDate[l.Date]
		if !ok {
			diffs = append(diffs, dayDiff{Date: l.Date, Field: "missing", Local: string(l.State), Server: "-"})
			continue
		}
		if l.IsAvailable != s.IsAvailable {
			diffs = append(diffs, dayDiff{Date: l.Date, Field: "is_available", Local: fmt.Sprint(l.IsAvailable), Server: fmt.Sprint(s.IsAvailable)})
		}
		if l.IsBlocked != s.IsBlocked {
			diffs = append(diffs, dayDiff{Date: l.Date, Field: "is_blocked", Local: fmt.Sprint(l.IsBlocked), Server: fmt.Sprint(s.IsBlocked)})
		}
		if l.SlotsCount != s.SlotsCount {
			diffs = append(diffs, dayDiff{Date: l.Date, Field: "slots_count", Local: fmt.Sprint(l.SlotsCount), Server: fmt.Sprint(s.SlotsCount)})
		}
	}
	for date := range serverByDate {
		if !seen[date] {
			diffs = append(diffs, dayDiff{Date: date, Field: "missing", Local: "-", Server: "present"})
		}
	}

	sort.SliceStable(diffs, func(i, j int) bool { return diffs[i].Date.Before(diffs[j].Date) })
	return diffs
}

func printReport(w io.Writer, reports []monthReport) (diffCount, failures int) {
	for _, r := range reports {
		switch {
		case r.Err != nil:
			failures++
			fmt.Fprintf(w, "[ERROR] %04d-%02d %v\n", r.Year, r.Month, r.Err)
		case len(r.Diffs) == 0:
			fmt.Fprintf(w, "[OK] %04d-%02d\n", r.Year, r.Month)
		default:
			diffCount += len(r.Diffs)
			fmt.Fprintf(w, "[DIFF] %04d-%02d (%d)\n", r.Year, r.Month, len(r.Diffs))
			for _, d := range r.Diffs {
				fmt.Fprintf(w, "  %s %-12s local=%s server=%s\n", d.Date, d.Field, d.Local, d.Server)
			}
		}
	}
	return diffCount, failures
}
