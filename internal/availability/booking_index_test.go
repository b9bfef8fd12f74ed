package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
)

func TestBookingIndexForDateOrdersByTime(t *testing.T) {
	idx := NewBookingIndex([]models.Booking{
		{ID: "late", ScheduledAt: models.NewTimestamp(time.Date(2024, time.March, 11, 15, 0, 0, 0, time.UTC))},
		{ID: "early", ScheduledAt: models.NewTimestamp(time.Date(2024, time.March, 11, 8, 0, 0, 0, time.UTC))},
		{ID: "other", ScheduledAt: models.NewTimestamp(time.Date(2024, time.March, 12, 8, 0, 0, 0, time.UTC))},
	}, time.UTC, DefaultOccupancy)

	got := idx.ForDate(models.NewDate(2024, time.March, 11))
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
	assert.False(t, idx.HasAny(models.NewDate(2024, time.March, 13)))
	assert.Len(t, idx.Dates(), 2)
}

func TestBookingIndexUsesWireDate(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	naive, err := models.ParseTimestamp("2024-03-10T20:00:00")
	require.NoError(t, err)
	offset, err := models.ParseTimestamp("2024-03-10T23:30:00-05:00")
	require.NoError(t, err)
	bookings := []models.Booking{{ID: "naive", ScheduledAt: naive}, {ID: "offset", ScheduledAt: offset}}

	idx := NewBookingIndex(bookings, loc, DefaultOccupancy)

	got := idx.ForDate(models.NewDate(2024, time.March, 10))
	require.Len(t, got, 2)
	assert.Equal(t, "naive", got[0].ID)
	assert.False(t, idx.HasAny(models.NewDate(2024, time.March, 11)))
}

func TestBookingIndexTutorLocalDates(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	b := models.Booking{ScheduledAt: models.NewTimestamp(time.Date(2024, time.March, 10, 20, 0, 0, 0, time.UTC))}
	policy := OccupancyPolicy{CancelledOccupies: true, TutorLocalDates: true}

	local := NewBookingIndex([]models.Booking{b}, loc, policy)
	utc := NewBookingIndex([]models.Booking{b}, nil, policy)

	assert.True(t, local.HasAny(models.NewDate(2024, time.March, 11)))
	assert.False(t, local.HasAny(models.NewDate(2024, time.March, 10)))
	assert.True(t, utc.HasAny(models.NewDate(2024, time.March, 10)))
}

func TestBookingIndexOccupancyPolicy(t *testing.T) {
	bookings := []models.Booking{{ScheduledAt: models.NewTimestamp(time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC)), Status: models.BookingCancelled}}
	date := models.NewDate(2024, time.March, 11)

	assert.True(t, NewBookingIndex(bookings, nil, DefaultOccupancy).HasAny(date))
	strict := NewBookingIndex(bookings, nil, OccupancyPolicy{})
	assert.False(t, strict.HasAny(date))
	assert.Len(t, strict.ForDate(date), 1)
}

func TestMonthGridWeeks(t *testing.T) {
	grid, err := NewMonthGrid(2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 4, grid.Leading)

	weeks := grid.Weeks()
	require.Len(t, weeks, 5)
	assert.Nil(t, weeks[0][0])
	require.NotNil(t, weeks[0][4])
	assert.Equal(t, 1, weeks[0][4].Day)
	assert.Len(t, weeks[4], 7)
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2100, time.February))
}
