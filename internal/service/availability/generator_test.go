package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func utc(h, m int) time.Time {
	return time.Date(2025, 8, 14, h, m, 0, 0, time.UTC)
}

func timePtr(v time.Time) *time.Time { return &v }

func TestNextSlots(t *testing.T) {
	origin := utc(11, 0) // anchor ends at 11:00

	slots := nextSlots(origin, 60, 15, 120, domain.PlaceholderLocation(), nil)

	// Starts walk 11:00 .. 13:00 inclusive in 15-minute steps
	require.Len(t, slots, 9)
	assert.Equal(t, utc(11, 0), slots[0].Start)
	assert.Equal(t, utc(12, 0), slots[0].End)
	assert.Equal(t, utc(13, 0), slots[8].Start)
	assert.Equal(t, utc(14, 0), slots[8].End)

	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Nil(t, s.ConflictingEvent)
		assert.Equal(t, 60, s.DurationMinutes)
	}
}

func TestNextSlots_ConflictMarking(t *testing.T) {
	origin := utc(11, 0)

	events := []domain.CalendarEvent{
		{ID: "busy-1", Start: timePtr(utc(12, 0)), End: timePtr(utc(13, 0))},
	}

	slots := nextSlots(origin, 60, 30, 120, domain.PlaceholderLocation(), events)
	require.Len(t, slots, 5)

	// 11:00-12:00 touches the event boundary and stays available
	assert.True(t, slots[0].Available)
	// 11:30-12:30, 12:00-13:00, 12:30-13:30 overlap
	for _, i := range []int{1, 2, 3} {
		assert.False(t, slots[i].Available, "slot %d should conflict", i)
		require.NotNil(t, slots[i].ConflictingEvent)
		assert.Equal(t, "busy-1", slots[i].ConflictingEvent.ID)
	}
	// 13:00-14:00 is clear again
	assert.True(t, slots[4].Available)
}

func TestNextSlots_FirstConflictWins(t *testing.T) {
	origin := utc(11, 0)

	// Both events overlap the first slot; the marker keeps the one that
	// comes first in source order even though the other overlaps more
	events := []domain.CalendarEvent{
		{ID: "short", Start: timePtr(utc(11, 45)), End: timePtr(utc(12, 0))},
		{ID: "long", Start: timePtr(utc(11, 0)), End: timePtr(utc(12, 0))},
	}

	slots := nextSlots(origin, 60, 60, 0, domain.PlaceholderLocation(), events)
	require.Len(t, slots, 1)
	require.NotNil(t, slots[0].ConflictingEvent)
	assert.Equal(t, "short", slots[0].ConflictingEvent.ID)
}

func TestNextSlots_EventsWithoutInstantsIgnored(t *testing.T) {
	origin := utc(11, 0)

	events := []domain.CalendarEvent{
		{ID: "allday", AllDay: true},
		{ID: "half", Start: timePtr(utc(11, 0))},
	}

	slots := nextSlots(origin, 60, 30, 60, domain.PlaceholderLocation(), events)
	require.Len(t, slots, 3)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestNextSlots_DegenerateInputs(t *testing.T) {
	origin := utc(11, 0)
	loc := domain.PlaceholderLocation()

	assert.Empty(t, nextSlots(origin, 0, 15, 120, loc, nil))
	assert.Empty(t, nextSlots(origin, -60, 15, 120, loc, nil))
	assert.Empty(t, nextSlots(origin, 60, 0, 120, loc, nil))
	assert.Empty(t, nextSlots(origin, 60, 15, -1, loc, nil))

	// Zero range still yields the single slot at the origin
	assert.Len(t, nextSlots(origin, 60, 15, 0, loc, nil), 1)
}

func TestPreviousSlots(t *testing.T) {
	origin := utc(15, 0) // anchor starts at 15:00

	slots := previousSlots(origin, 60, 15, 60, nil)

	// Ends walk down from 15:00, but the slot start must stay within the
	// 60-minute bound too: only 14:00-15:00 fits
	require.Len(t, slots, 1)
	assert.Equal(t, utc(14, 0), slots[0].Start)
	assert.Equal(t, utc(15, 0), slots[0].End)
}

func TestPreviousSlots_WiderBound(t *testing.T) {
	origin := utc(15, 0)

	slots := previousSlots(origin, 60, 30, 120, nil)

	// Ends at 15:00, 14:30, 14:00; 13:30 would start at 12:30, before the
	// 13:00 bound
	require.Len(t, slots, 3)
	assert.Equal(t, utc(14, 0), slots[0].Start)
	assert.Equal(t, utc(13, 30), slots[1].Start)
	assert.Equal(t, utc(13, 0), slots[2].Start)
}

func TestPreviousSlots_DurationExceedsBound(t *testing.T) {
	origin := utc(15, 0)

	// A 90-minute slot cannot start within a 60-minute lookback
	assert.Empty(t, previousSlots(origin, 90, 15, 60, nil))
}

func TestPreviousSlots_AlwaysPlaceholderLocation(t *testing.T) {
	origin := utc(15, 0)

	slots := previousSlots(origin, 30, 30, 60, nil)
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.Equal(t, domain.PlaceholderLocation(), s.Location)
	}
}

func TestPreviousSlots_ConflictMarking(t *testing.T) {
	origin := utc(15, 0)

	events := []domain.CalendarEvent{
		{ID: "standup", Start: timePtr(utc(13, 30)), End: timePtr(utc(14, 0))},
	}

	slots := previousSlots(origin, 60, 30, 120, events)
	require.Len(t, slots, 3)

	// 14:00-15:00 touches the event end and stays available
	assert.True(t, slots[0].Available)
	// 13:30-14:30 and 13:00-14:00 overlap
	assert.False(t, slots[1].Available)
	assert.False(t, slots[2].Available)
	require.NotNil(t, slots[1].ConflictingEvent)
	assert.Equal(t, "standup", slots[1].ConflictingEvent.ID)
}

func TestOnlyAvailable(t *testing.T) {
	slots := []domain.AvailabilitySlot{
		{Start: utc(11, 0), Available: true},
		{Start: utc(11, 30), Available: false},
		{Start: utc(12, 0), Available: true},
	}

	filtered := onlyAvailable(slots)
	require.Len(t, filtered, 2)
	assert.Equal(t, utc(11, 0), filtered[0].Start)
	assert.Equal(t, utc(12, 0), filtered[1].Start)
}
