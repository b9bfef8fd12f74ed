package availability

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
)

// BlockGateway is the remote side of the blocked-date set.
type BlockGateway interface {
	ListBlockedDates(ctx context.Context) (*models.BlockedDateList, error)
	AddBlockedDate(ctx context.Context, date models.Date, reason string) (*models.BlockedDate, error)
	RemoveBlockedDate(ctx context.Context, id string) error
}

// BlockLookup answers whether a date is blocked.
type BlockLookup interface {
	Lookup(date models.Date) (models.BlockedDate, bool)
}

// BlockSet is an immutable date-indexed view over blocked dates. When two
// entries share a date the first one wins.
type BlockSet map[models.Date]models.BlockedDate

// NewBlockSet indexes blocks by date.
func NewBlockSet(blocks []models.BlockedDate) BlockSet {
	set := make(BlockSet, len(blocks))
	for _, b := range blocks {
		if _, exists := set[b.Date]; !exists {
			set[b.Date] = b
		}
	}
	return set
}

// Lookup implements BlockLookup.
func (s BlockSet) Lookup(date models.Date) (models.BlockedDate, bool) {
	b, ok := s[date]
	return b, ok
}

// BlockStore mirrors the marketplace's blocked dates. The local set only
// changes after the remote call succeeds; there is no optimistic state.
// Until a fetch has succeeded the store is unloaded and a failed refetch
// leaves it that way.
type BlockStore struct {
	gateway BlockGateway
	logger  *zap.Logger

	mu     sync.RWMutex
	blocks []models.BlockedDate
	loaded bool
}

// NewBlockStore constructs an empty store over gateway.
func NewBlockStore(gateway BlockGateway, logger *zap.Logger) *BlockStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BlockStore{gateway: gateway, logger: logger}
}

// Refresh replaces the local set with the remote list.
func (s *BlockStore) Refresh(ctx context.Context) error {
	list, err := s.gateway.ListBlockedDates(ctx)
	if err != nil {
		return err
	}
	var blocks []models.BlockedDate
	if list != nil {
		blocks = list.BlockedDates
	}
	s.set(blocks)
	return nil
}

// Add blocks date remotely, then resyncs. A zero date is rejected before any
// remote call is made.
func (s *BlockStore) Add(ctx context.Context, date models.Date, reason string) (*models.BlockedDate, error) {
	if date.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "date is required")
	}
	created, err := s.gateway.AddBlockedDate(ctx, date, reason)
	if err != nil {
		return nil, err
	}
	if created == nil || created.ID == "" {
		return nil, appErrors.Clone(appErrors.ErrUpstreamUnavailable, "marketplace returned no blocked date")
	}
	if refreshErr := s.Refresh(ctx); refreshErr != nil {
		s.logger.Warn("refetch blocked dates after add failed", zap.Error(refreshErr))
		s.mu.Lock()
		if s.loaded {
			s.blocks = append(s.blocks, *created)
		}
		s.mu.Unlock()
	}
	return created, nil
}

// Remove unblocks id remotely, then resyncs.
func (s *BlockStore) Remove(ctx context.Context, id string) error {
	if id == "" {
		return appErrors.Clone(appErrors.ErrPreconditionFailed, "blocked date id is required")
	}
	if err := s.gateway.RemoveBlockedDate(ctx, id); err != nil {
		return err
	}
	if refreshErr := s.Refresh(ctx); refreshErr != nil {
		s.logger.Warn("refetch blocked dates after remove failed", zap.Error(refreshErr))
		s.mu.Lock()
		if s.loaded {
			kept := make([]models.BlockedDate, 0, len(s.blocks))
			for _, b := range s.blocks {
				if b.ID != id {
					kept = append(kept, b)
				}
			}
			s.blocks = kept
		}
		s.mu.Unlock()
	}
	return nil
}

// Loaded reports whether a fetch has ever succeeded.
func (s *BlockStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// List returns the blocks ordered by date.
func (s *BlockStore) List() []models.BlockedDate {
	s.mu.RLock()
	out := make([]models.BlockedDate, len(s.blocks))
	copy(out, s.blocks)
	s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Contains reports whether date is blocked.
func (s *BlockStore) Contains(date models.Date) bool {
	_, ok := s.Lookup(date)
	return ok
}

// Lookup implements BlockLookup.
func (s *BlockStore) Lookup(date models.Date) (models.BlockedDate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.blocks {
		if b.Date == date {
			return b, true
		}
	}
	return models.BlockedDate{}, false
}

// Set returns an indexed snapshot for the resolver.
func (s *BlockStore) Set() BlockSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return NewBlockSet(s.blocks)
}

func (s *BlockStore) set(blocks []models.BlockedDate) {
	cp := make([]models.BlockedDate, len(blocks))
	copy(cp, blocks)
	s.mu.Lock()
	s.blocks = cp
	s.loaded = true
	s.mu.Unlock()
}
