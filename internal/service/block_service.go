package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-dashboard-api/internal/availability"
	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

// BlockResult carries the affected block and the refetched set. When the
// set could not be fetched Synced is false and BlockedDates is nil.
type BlockResult struct {
	Block        *models.BlockedDate  `json:"block,omitempty"`
	BlockedDates []models.BlockedDate `json:"blocked_dates"`
	Total        int                  `json:"total"`
	Synced       bool                 `json:"synced"`
}

// BlockService manages full-day blocks through availability.BlockStore.
type BlockService struct {
	bind   MarketplaceBinder
	cache  *CacheService
	logger *zap.Logger
}

// NewBlockService constructs the service.
func NewBlockService(bind MarketplaceBinder, cache *CacheService, logger *zap.Logger) *BlockService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BlockService{bind: bind, cache: cache, logger: logger}
}

// List returns the tutor's blocked dates ordered by date.
func (s *BlockService) List(ctx context.Context, sess *session.Session) (*BlockResult, error) {
	if _, err := requireUser(sess); err != nil {
		return nil, err
	}
	store := availability.NewBlockStore(s.bind(sess), s.logger)
	if err := store.Refresh(ctx); err != nil {
		return nil, err
	}
	return result(nil, store), nil
}

// Add blocks one date. The date is checked before any marketplace call.
func (s *BlockService) Add(ctx context.Context, sess *session.Session, req dto.AddBlockedDateRequest) (*BlockResult, error) {
	tutorID, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	if req.Date == "" {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "select a date to block")
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	store := s.load(ctx, sess)
	created, err := store.Add(ctx, date, req.Reason)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateTutor(ctx, tutorID)
	return result(created, store), nil
}

// Remove unblocks the block with id.
func (s *BlockService) Remove(ctx context.Context, sess *session.Session, id string) (*BlockResult, error) {
	tutorID, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	store := s.load(ctx, sess)
	if err := store.Remove(ctx, id); err != nil {
		return nil, err
	}
	s.cache.InvalidateTutor(ctx, tutorID)
	return result(nil, store), nil
}

// load primes a store with the current set so a failed refetch after a
// mutation still has a full list to apply the change to.
func (s *BlockService) load(ctx context.Context, sess *session.Session) *availability.BlockStore {
	store := availability.NewBlockStore(s.bind(sess), s.logger)
	if err := store.Refresh(ctx); err != nil {
		s.logger.Warn("load blocked dates before mutation failed", zap.Error(err))
	}
	return store
}

func result(block *models.BlockedDate, store *availability.BlockStore) *BlockResult {
	if !store.Loaded() {
		return &BlockResult{Block: block}
	}
	list := store.List()
	return &BlockResult{Block: block, BlockedDates: list, Total: len(list), Synced: true}
}
