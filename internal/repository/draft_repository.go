package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
)

const draftKeyPrefix = "schedule:draft:"

// ScheduleDraft is an unsaved weekly template kept between edits.
type ScheduleDraft struct {
	TutorID   string                `json:"tutor_id"`
	Schedule  models.WeeklySchedule `json:"weekly_schedule"`
	Timezone  string                `json:"timezone,omitempty"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// DraftRepository stores one draft per tutor in Redis, or in process memory
// when Redis is not configured.
type DraftRepository struct {
	cache  *CacheRepository
	ttl    time.Duration
	logger *zap.Logger

	mu     sync.Mutex
	memory map[string]memoryDraft
	now    func() time.Time
}

type memoryDraft struct {
	draft   ScheduleDraft
	expires time.Time
}

// NewDraftRepository builds a draft store on top of cache.
func NewDraftRepository(cache *CacheRepository, ttl time.Duration, logger *zap.Logger) *DraftRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &DraftRepository{
		cache:  cache,
		ttl:    ttl,
		logger: logger,
		memory: make(map[string]memoryDraft),
		now:    time.Now,
	}
}

// DraftKey returns the storage key for tutorID.
func DraftKey(tutorID string) string {
	return draftKeyPrefix + tutorID
}

// Get returns the draft for tutorID or appErrors.ErrNotFound.
func (r *DraftRepository) Get(ctx context.Context, tutorID string) (*ScheduleDraft, error) {
	if r.cache.Enabled() {
		var draft ScheduleDraft
		if err := r.cache.Get(ctx, DraftKey(tutorID), &draft); err != nil {
			if errors.Is(err, appErrors.ErrCacheMiss) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule draft not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal, "failed to load schedule draft")
		}
		draft.Schedule = draft.Schedule.Clone()
		return &draft, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.memory[tutorID]
	if !ok || r.now().After(entry.expires) {
		delete(r.memory, tutorID)
		return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule draft not found")
	}
	draft := entry.draft
	draft.Schedule = draft.Schedule.Clone()
	return &draft, nil
}

// Save writes draft and refreshes its TTL.
func (r *DraftRepository) Save(ctx context.Context, draft ScheduleDraft) error {
	draft.UpdatedAt = r.now().UTC()
	draft.Schedule = draft.Schedule.Clone()
	if r.cache.Enabled() {
		if err := r.cache.Set(ctx, DraftKey(draft.TutorID), draft, r.ttl); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal, "failed to store schedule draft")
		}
		return nil
	}

	r.mu.Lock()
	r.memory[draft.TutorID] = memoryDraft{draft: draft, expires: r.now().Add(r.ttl)}
	r.mu.Unlock()
	return nil
}

// Delete drops the draft for tutorID. Missing drafts are not an error.
func (r *DraftRepository) Delete(ctx context.Context, tutorID string) error {
	if r.cache.Enabled() {
		if err := r.cache.Delete(ctx, DraftKey(tutorID)); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal, "failed to discard schedule draft")
		}
		return nil
	}

	r.mu.Lock()
	delete(r.memory, tutorID)
	r.mu.Unlock()
	return nil
}
