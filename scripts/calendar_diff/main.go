// Command calendar_diff compares the locally resolved month calendar with the
// marketplace's own calendar endpoint for one tutor over a range of months.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/noah-isme/tutor-dashboard-api/internal/availability"
	"github.com/noah-isme/tutor-dashboard-api/internal/service"
	"github.com/noah-isme/tutor-dashboard-api/internal/upstream"
	"github.com/noah-isme/tutor-dashboard-api/pkg/config"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

func main() {
	var (
		baseURL        string
		token          string
		from           string
		months         int
		nonWorking     string
		timeout        time.Duration
		failOnMismatch bool
	)

	flag.StringVar(&baseURL, "upstream", "http://localhost:8000/api", "Marketplace API base URL")
	flag.StringVar(&token, "token", os.Getenv("TUTOR_TOKEN"), "Tutor bearer token (defaults to $TUTOR_TOKEN)")
	flag.StringVar(&from, "from", time.Now().Format("2006-01"), "First month (YYYY-MM)")
	flag.IntVar(&months, "months", 3, "Number of months to compare")
	flag.StringVar(&nonWorking, "non-working", "saturday,sunday", "Comma separated non-working weekdays")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.BoolVar(&failOnMismatch, "strict", false, "Exit non-zero when any date differs")
	flag.Parse()

	if token == "" {
		log.Fatal("a tutor token is required (-token or $TUTOR_TOKEN)")
	}
	start, err := time.Parse("2006-01", from)
	if err != nil {
		log.Fatalf("invalid -from: %v", err)
	}
	policy, err := availability.PolicyFromNames(strings.Split(strings.ToLower(nonWorking), ","))
	if err != nil {
		log.Fatalf("invalid -non-working: %v", err)
	}

	client, err := upstream.New(config.UpstreamConfig{BaseURL: strings.TrimRight(baseURL, "/"), Timeout: timeout})
	if err != nil {
		log.Fatalf("invalid upstream: %v", err)
	}

	ctx := context.Background()
	sess := session.New()
	sess.Init(token, "", "", "", time.Time{})
	me, err := client.Session(sess).Me(ctx)
	if err != nil {
		log.Fatalf("resolve caller: %v", err)
	}
	sess.Init(token, me.ID, me.Email, session.Role(me.Role), time.Time{})

	bind := func(s *session.Session) service.MarketplaceAPI { return client.Session(s) }
	calendar := service.NewCalendarService(bind, nil, service.CalendarOptions{
		Policy:    policy,
		Occupancy: availability.DefaultOccupancy,
	}, nil)

	reports := make([]monthReport, 0, months)
	for i := 0; i < months; i++ {
		m := start.AddDate(0, i, 0)
		reports = append(reports, compareOne(ctx, calendar, client.Session(sess), sess, m.Year(), int(m.Month())))
	}

	diffs, failures := printReport(os.Stdout, reports)
	fmt.Printf("Months: %d, differing dates: %d, failed months: %d\n", len(reports), diffs, failures)
	if failures > 0 || (failOnMismatch && diffs > 0) {
		os.Exit(1)
	}
}

func compareOne(ctx context.Context, calendar *service.CalendarService, api *upstream.SessionClient, sess *session.Session, year, month int) monthReport {
	report := monthReport{Year: year, Month: month}
	local, err := calendar.Month(ctx, sess, year, month)
	if err != nil {
		report.Err = fmt.Errorf("local: %w", err)
		return report
	}
	server, err := api.GetCalendar(ctx, year, month)
	if err != nil {
		report.Err = fmt.Errorf("server: %w", err)
		return report
	}
	report.Diffs = compareMonth(local.Days, server.Days)
	return report
}
