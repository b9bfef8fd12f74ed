package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-dashboard-api/internal/dto"
	"github.com/noah-isme/tutor-dashboard-api/internal/models"
	"github.com/noah-isme/tutor-dashboard-api/internal/repository"
	appErrors "github.com/noah-isme/tutor-dashboard-api/pkg/errors"
)

func newScheduleFixture(stub *stubMarketplace) (*ScheduleService, *repository.DraftRepository) {
	drafts := repository.NewDraftRepository(repository.NewCacheRepository(nil, nil), time.Hour, nil)
	return NewScheduleService(stub.binder(), drafts, nil, nil, models.TimeSlot{}, nil), drafts
}

func TestScheduleServiceDraftHydratesOnce(t *testing.T) {
	stub := marchStub()
	svc, _ := newScheduleFixture(stub)
	ctx := context.Background()

	draft, err := svc.Draft(ctx, tutorSession())
	require.NoError(t, err)
	assert.Equal(t, 1, draft.SlotCounts[models.Monday])
	assert.Equal(t, "UTC", draft.Timezone)

	_, err = svc.Draft(ctx, tutorSession())
	require.NoError(t, err)
	assert.Equal(t, 1, stub.count("GetSettings"))
}

func TestScheduleServiceEditsDraft(t *testing.T) {
	stub := marchStub()
	svc, _ := newScheduleFixture(stub)
	ctx := context.Background()
	sess := tutorSession()

	draft, err := svc.AddSlot(ctx, sess, dto.AddSlotRequest{Day: "Tuesday"})
	require.NoError(t, err)
	assert.Equal(t, []models.TimeSlot{{StartTime: "09:00", EndTime: "17:00"}}, draft.WeeklySchedule[models.Tuesday])

	draft, err = svc.UpdateSlot(ctx, sess, "tuesday", 0, dto.UpdateSlotRequest{Field: "end_time", Value: "12:00"})
	require.NoError(t, err)
	assert.Equal(t, models.TimeSlot{StartTime: "09:00", EndTime: "12:00"}, draft.WeeklySchedule[models.Tuesday][0])

	draft, err = svc.RemoveSlot(ctx, sess, "monday", 0)
	require.NoError(t, err)
	assert.NotNil(t, draft.WeeklySchedule[models.Monday])
	assert.Empty(t, draft.WeeklySchedule[models.Monday])

	_, err = svc.RemoveSlot(ctx, sess, "caturday", 0)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	_, err = svc.UpdateSlot(ctx, sess, "tuesday", 0, dto.UpdateSlotRequest{Field: "duration", Value: "1"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Zero(t, stub.count("UpdateSchedule"))
}

func TestScheduleServiceSaveWritesAndClearsDraft(t *testing.T) {
	stub := marchStub()
	var saved models.WeeklySchedule
	stub.updateSchedule = func(schedule models.WeeklySchedule) (*models.AvailabilitySettings, error) {
		saved = schedule
		return &models.AvailabilitySettings{WeeklySchedule: schedule}, nil
	}
	svc, drafts := newScheduleFixture(stub)
	ctx := context.Background()
	sess := tutorSession()

	_, err := svc.AddSlot(ctx, sess, dto.AddSlotRequest{Day: "friday", StartTime: "13:00", EndTime: "15:00"})
	require.NoError(t, err)

	res, err := svc.Save(ctx, sess)
	require.NoError(t, err)
	assert.Len(t, saved[models.Friday], 1)
	assert.Len(t, res.BlockedDates, 1)
	assert.Equal(t, 1, stub.count("ListBlockedDates"))

	_, err = drafts.Get(ctx, "tutor-1")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestScheduleServiceSaveFailureKeepsDraft(t *testing.T) {
	stub := marchStub()
	stub.updateSchedule = func(models.WeeklySchedule) (*models.AvailabilitySettings, error) {
		return nil, appErrors.Clone(appErrors.ErrUpstreamRejected, "")
	}
	svc, drafts := newScheduleFixture(stub)
	ctx := context.Background()

	_, err := svc.AddSlot(ctx, tutorSession(), dto.AddSlotRequest{Day: "friday"})
	require.NoError(t, err)
	_, err = svc.Save(ctx, tutorSession())
	require.Error(t, err)

	draft, err := drafts.Get(ctx, "tutor-1")
	require.NoError(t, err)
	assert.Len(t, draft.Schedule[models.Friday], 1)
}

func TestScheduleServiceReplaceRejectsUnknownDay(t *testing.T) {
	svc, _ := newScheduleFixture(marchStub())

	_, err := svc.Replace(context.Background(), tutorSession(), dto.ReplaceScheduleRequest{
		WeeklySchedule: models.WeeklySchedule{"holiday": nil},
	})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}
