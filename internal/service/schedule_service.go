package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-dashboard-api/internal/availability"
	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	"github.com/noah-isme/tutor-dashboard-api/internal/repository"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
	"github.com/noah-isme/tutor-dashboard-api/pkg/session"
)

type draftRepository interface {
	Get(ctx context.Context, tutorID string) (*repository.ScheduleDraft, error)
	Save(ctx context.Context, draft repository.ScheduleDraft) error
	Delete(ctx context.Context, tutorID string) error
}

// ScheduleSaveResult is returned after a draft is written upstream.
type ScheduleSaveResult struct {
	Settings     *models.AvailabilitySettings `json:"settings"`
	BlockedDates []models.BlockedDate         `json:"blocked_dates"`
}

// ScheduleService edits the weekly template as a draft and saves it to the
// marketplace on demand.
type ScheduleService struct {
	bind        MarketplaceBinder
	drafts      draftRepository
	cache       *CacheService
	validator   *validator.Validate
	defaultSlot models.TimeSlot
	logger      *zap.Logger
}

// NewScheduleService constructs the service. defaultSlot is used when a slot
// is added without times.
func NewScheduleService(bind MarketplaceBinder, drafts draftRepository, cache *CacheService, validate *validator.Validate, defaultSlot models.TimeSlot, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultSlot.StartTime == "" || defaultSlot.EndTime == "" {
		defaultSlot = models.TimeSlot{StartTime: availability.DefaultSlotStart, EndTime: availability.DefaultSlotEnd}
	}
	return &ScheduleService{bind: bind, drafts: drafts, cache: cache, validator: validate, defaultSlot: defaultSlot, logger: logger}
}

// Settings returns the persisted availability settings.
func (s *ScheduleService) Settings(ctx context.Context, sess *session.Session) (*models.AvailabilitySettings, error) {
	if _, err := requireUser(sess); err != nil {
		return nil, err
	}
	return s.bind(sess).GetSettings(ctx)
}

// UpdateSettings changes the non-schedule settings.
func (s *ScheduleService) UpdateSettings(ctx context.Context, sess *session.Session, req models.UpdateSettingsRequest) (*models.AvailabilitySettings, error) {
	tutorID, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	settings, err := s.bind(sess).UpdateSettings(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateTutor(ctx, tutorID)
	return settings, nil
}

// Draft returns the current draft, hydrating it from settings on first use.
func (s *ScheduleService) Draft(ctx context.Context, sess *session.Session) (*dto.ScheduleDraftResponse, error) {
	draft, err := s.load(ctx, sess)
	if err != nil {
		return nil, err
	}
	return draftResponse(draft), nil
}

// AddSlot appends a slot to a weekday of the draft.
func (s *ScheduleService) AddSlot(ctx context.Context, sess *session.Session, req dto.AddSlotRequest) (*dto.ScheduleDraftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	day, err := models.ParseWeekday(req.Day)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	slot := s.defaultSlot
	if req.StartTime != "" {
		slot.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		slot.EndTime = req.EndTime
	}
	return s.mutate(ctx, sess, func(store *availability.ScheduleStore) error {
		return store.AddSlot(day, slot)
	})
}

// RemoveSlot deletes the slot at index. Out of range indexes change nothing.
func (s *ScheduleService) RemoveSlot(ctx context.Context, sess *session.Session, rawDay string, index int) (*dto.ScheduleDraftResponse, error) {
	day, err := models.ParseWeekday(rawDay)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	return s.mutate(ctx, sess, func(store *availability.ScheduleStore) error {
		return store.RemoveSlot(day, index)
	})
}

// UpdateSlot edits one field of the slot at index.
func (s *ScheduleService) UpdateSlot(ctx context.Context, sess *session.Session, rawDay string, index int, req dto.UpdateSlotRequest) (*dto.ScheduleDraftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	day, err := models.ParseWeekday(rawDay)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	return s.mutate(ctx, sess, func(store *availability.ScheduleStore) error {
		return store.UpdateSlot(day, index, models.SlotField(req.Field), req.Value)
	})
}

// Replace overwrites the whole draft.
func (s *ScheduleService) Replace(ctx context.Context, sess *session.Session, req dto.ReplaceScheduleRequest) (*dto.ScheduleDraftResponse, error) {
	if err := req.WeeklySchedule.Validate(); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	return s.mutate(ctx, sess, func(store *availability.ScheduleStore) error {
		return store.ReplaceAll(req.WeeklySchedule)
	})
}

// Save writes the draft to the marketplace, clears it, and refreshes the
// blocked dates.
func (s *ScheduleService) Save(ctx context.Context, sess *session.Session) (*ScheduleSaveResult, error) {
	draft, err := s.load(ctx, sess)
	if err != nil {
		return nil, err
	}
	api := s.bind(sess)
	settings, err := api.UpdateSchedule(ctx, draft.Schedule)
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Delete(ctx, draft.TutorID); err != nil {
		s.logger.Warn("discard saved draft failed", zap.String("tutor_id", draft.TutorID), zap.Error(err))
	}
	s.cache.InvalidateTutor(ctx, draft.TutorID)

	blocks := availability.NewBlockStore(api, s.logger)
	if err := blocks.Refresh(ctx); err != nil {
		s.logger.Warn("refresh blocked dates after schedule save failed", zap.String("tutor_id", draft.TutorID), zap.Error(err))
	}
	return &ScheduleSaveResult{Settings: settings, BlockedDates: blocks.List()}, nil
}

// Discard drops the draft; the next read rehydrates from settings.
func (s *ScheduleService) Discard(ctx context.Context, sess *session.Session) error {
	tutorID, err := requireUser(sess)
	if err != nil {
		return err
	}
	return s.drafts.Delete(ctx, tutorID)
}

func (s *ScheduleService) mutate(ctx context.Context, sess *session.Session, apply func(*availability.ScheduleStore) error) (*dto.ScheduleDraftResponse, error) {
	draft, err := s.load(ctx, sess)
	if err != nil {
		return nil, err
	}
	store, err := availability.NewScheduleStore(draft.Schedule)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal, "stored draft is invalid")
	}
	if err := apply(store.WithDefaultSlot(s.defaultSlot)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	draft.Schedule = store.Snapshot()
	if err := s.drafts.Save(ctx, *draft); err != nil {
		return nil, err
	}
	saved, err := s.drafts.Get(ctx, draft.TutorID)
	if err != nil {
		return draftResponse(draft), nil
	}
	return draftResponse(saved), nil
}

func (s *ScheduleService) load(ctx context.Context, sess *session.Session) (*repository.ScheduleDraft, error) {
	tutorID, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	draft, err := s.drafts.Get(ctx, tutorID)
	if err == nil {
		return draft, nil
	}
	if !errors.Is(err, appErrors.ErrNotFound) {
		return nil, err
	}

	settings, err := s.bind(sess).GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if err := settings.WeeklySchedule.Validate(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal, "marketplace returned an invalid schedule")
	}
	fresh := repository.ScheduleDraft{TutorID: tutorID, Schedule: settings.WeeklySchedule.Clone(), Timezone: settings.Timezone}
	if err := s.drafts.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return &fresh, nil
}

func draftResponse(d *repository.ScheduleDraft) *dto.ScheduleDraftResponse {
	schedule := d.Schedule.Clone()
	counts := make(map[models.Weekday]int, len(schedule))
	for day, slots := range schedule {
		counts[day] = len(slots)
	}
	return &dto.ScheduleDraftResponse{
		WeeklySchedule: schedule,
		SlotCounts:     counts,
		Timezone:       d.Timezone,
		UpdatedAt:      d.UpdatedAt,
	}
}
