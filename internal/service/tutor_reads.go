package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
)

// tutorReads loads the three calendar inputs. Settings and blocked dates
// only change through the tutor's own mutations, which invalidate them, so
// they are read through the cache. Bookings are created by students and are
// always read fresh.
type tutorReads struct {
	cache *CacheService
	ttl   time.Duration
}

type tutorSnapshot struct {
	settings *models.AvailabilitySettings
	blocks   []models.BlockedDate
	bookings []models.Booking
}

func cacheKey(tutorID, part string) string {
	return calendarKeyPrefix + tutorID + ":" + part
}

func (r tutorReads) settings(ctx context.Context, api MarketplaceAPI, tutorID string) (*models.AvailabilitySettings, error) {
	var out models.AvailabilitySettings
	err := r.cache.Remember(ctx, cacheKey(tutorID, "settings"), r.ttl, &out, func(ctx context.Context) error {
		settings, err := api.GetSettings(ctx)
		if err != nil {
			return err
		}
		out = *settings
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r tutorReads) blocks(ctx context.Context, api MarketplaceAPI, tutorID string) ([]models.BlockedDate, error) {
	var out []models.BlockedDate
	err := r.cache.Remember(ctx, cacheKey(tutorID, "blocked"), r.ttl, &out, func(ctx context.Context) error {
		list, err := api.ListBlockedDates(ctx)
		if err != nil {
			return err
		}
		if list != nil {
			out = list.BlockedDates
		}
		return nil
	})
	return out, err
}

func (r tutorReads) bookings(ctx context.Context, api MarketplaceAPI) ([]models.Booking, error) {
	return api.ListTutorBookings(ctx)
}

// snapshot fans out all three reads and waits for every one of them.
func (r tutorReads) snapshot(ctx context.Context, api MarketplaceAPI, tutorID string) (*tutorSnapshot, error) {
	snap := &tutorSnapshot{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		settings, err := r.settings(gctx, api, tutorID)
		snap.settings = settings
		return err
	})
	g.Go(func() error {
		blocks, err := r.blocks(gctx, api, tutorID)
		snap.blocks = blocks
		return err
	})
	g.Go(func() error {
		bookings, err := r.bookings(gctx, api)
		snap.bookings = bookings
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
