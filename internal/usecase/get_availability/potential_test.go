package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func mustDay(t *testing.T, s string) domain.Day {
	t.Helper()
	d, err := domain.DayFromString(s)
	require.NoError(t, err)
	return d
}

// 2025-08-18 is a Monday
func mondayTemplate(windows ...domain.TemplateWindow) domain.WeeklyTemplate {
	return domain.WeeklyTemplate{1: windows}
}

func TestPotentialTimes_SingleWindow(t *testing.T) {
	template := mondayTemplate(domain.TemplateWindow{
		Start: domain.TimeOfDay{Hour: 9},
		End:   domain.TimeOfDay{Hour: 12},
	})

	day := mustDay(t, "2025-08-18")
	candidates := potentialTimes(day, day, 60, template, 60, time.UTC)

	require.Len(t, candidates, 3)
	assert.Equal(t, time.Date(2025, 8, 18, 9, 0, 0, 0, time.UTC), candidates[0].Start)
	assert.Equal(t, time.Date(2025, 8, 18, 10, 0, 0, 0, time.UTC), candidates[0].End)
	assert.Equal(t, time.Date(2025, 8, 18, 10, 0, 0, 0, time.UTC), candidates[1].Start)
	// The last candidate ends exactly on the window boundary
	assert.Equal(t, time.Date(2025, 8, 18, 11, 0, 0, 0, time.UTC), candidates[2].Start)
	assert.Equal(t, time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC), candidates[2].End)
}

func TestPotentialTimes_EffectiveStepIsMinOfDurationAndStep(t *testing.T) {
	template := mondayTemplate(domain.TemplateWindow{
		Start: domain.TimeOfDay{Hour: 9},
		End:   domain.TimeOfDay{Hour: 12},
	})
	day := mustDay(t, "2025-08-18")

	t.Run("duration shorter than step", func(t *testing.T) {
		// 15-minute service, nominal 30-minute step: step collapses to 15
		candidates := potentialTimes(day, day, 15, template, 30, time.UTC)
		require.Len(t, candidates, 12)
		assert.Equal(t, 15*time.Minute, candidates[1].Start.Sub(candidates[0].Start))
	})

	t.Run("duration longer than step", func(t *testing.T) {
		// 90-minute service still offered every 30 minutes
		candidates := potentialTimes(day, day, 90, template, 30, time.UTC)
		require.Len(t, candidates, 4)
		assert.Equal(t, 30*time.Minute, candidates[1].Start.Sub(candidates[0].Start))
		assert.Equal(t, time.Date(2025, 8, 18, 10, 30, 0, 0, time.UTC), candidates[3].Start)
		assert.Equal(t, time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC), candidates[3].End)
	})

	t.Run("zero step falls back to default interval", func(t *testing.T) {
		candidates := potentialTimes(day, day, 60, template, 0, time.UTC)
		require.NotEmpty(t, candidates)
		assert.Equal(t, time.Duration(domain.DefaultAppointmentIntervalMinutes)*time.Minute,
			candidates[1].Start.Sub(candidates[0].Start))
	})
}

func TestPotentialTimes_MultiDayAndMultiWindow(t *testing.T) {
	template := domain.WeeklyTemplate{
		1: {
			{Start: domain.TimeOfDay{Hour: 9}, End: domain.TimeOfDay{Hour: 10}},
			{Start: domain.TimeOfDay{Hour: 13}, End: domain.TimeOfDay{Hour: 14}},
		},
		2: {
			{Start: domain.TimeOfDay{Hour: 9}, End: domain.TimeOfDay{Hour: 10}},
		},
	}

	start := mustDay(t, "2025-08-18") // Monday
	end := mustDay(t, "2025-08-20")   // Wednesday, no template entry

	candidates := potentialTimes(start, end, 60, template, 60, time.UTC)
	require.Len(t, candidates, 3)
	assert.Equal(t, time.Date(2025, 8, 18, 9, 0, 0, 0, time.UTC), candidates[0].Start)
	assert.Equal(t, time.Date(2025, 8, 18, 13, 0, 0, 0, time.UTC), candidates[1].Start)
	assert.Equal(t, time.Date(2025, 8, 19, 9, 0, 0, 0, time.UTC), candidates[2].Start)
}

func TestPotentialTimes_DurationLongerThanWindow(t *testing.T) {
	template := mondayTemplate(domain.TemplateWindow{
		Start: domain.TimeOfDay{Hour: 9},
		End:   domain.TimeOfDay{Hour: 10},
	})
	day := mustDay(t, "2025-08-18")

	candidates := potentialTimes(day, day, 120, template, 30, time.UTC)
	assert.Empty(t, candidates)
}

func TestPotentialTimes_DegenerateInputs(t *testing.T) {
	template := mondayTemplate(domain.TemplateWindow{
		Start: domain.TimeOfDay{Hour: 9},
		End:   domain.TimeOfDay{Hour: 12},
	})
	day := mustDay(t, "2025-08-18")

	t.Run("zero duration", func(t *testing.T) {
		assert.Empty(t, potentialTimes(day, day, 0, template, 30, time.UTC))
	})

	t.Run("negative duration", func(t *testing.T) {
		assert.Empty(t, potentialTimes(day, day, -60, template, 30, time.UTC))
	})

	t.Run("inverted range", func(t *testing.T) {
		assert.Empty(t, potentialTimes(day, day.AddDays(-3), 60, template, 30, time.UTC))
	})

	t.Run("empty template", func(t *testing.T) {
		assert.Empty(t, potentialTimes(day, day, 60, domain.WeeklyTemplate{}, 30, time.UTC))
	})
}

func TestPotentialTimes_RespectsTimeZone(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	template := mondayTemplate(domain.TemplateWindow{
		Start: domain.TimeOfDay{Hour: 9},
		End:   domain.TimeOfDay{Hour: 10},
	})
	day := mustDay(t, "2025-08-18")

	candidates := potentialTimes(day, day, 60, template, 60, loc)
	require.Len(t, candidates, 1)
	// PDT is UTC-7 in August: 09:00 local is 16:00 UTC
	assert.True(t, candidates[0].Start.Equal(time.Date(2025, 8, 18, 16, 0, 0, 0, time.UTC)))
}

func TestContainerTimes(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2025, 8, 18, h, m, 0, 0, time.UTC) }
	ptr := func(v time.Time) *time.Time { return &v }

	containers := []domain.CalendarEvent{
		{ID: "c1", Start: ptr(at(9, 0)), End: ptr(at(11, 0)), Location: "Downtown studio"},
		{ID: "allday", AllDay: true},
		{ID: "dateless"},
		{ID: "c2", Start: ptr(at(14, 0)), End: ptr(at(15, 0)), Location: "Uptown studio"},
	}

	candidates := containerTimes(containers, 60, 60)
	require.Len(t, candidates, 3)

	// Container location rides along on every derived candidate
	assert.Equal(t, "Downtown studio", candidates[0].Location)
	assert.Equal(t, "Downtown studio", candidates[1].Location)
	assert.Equal(t, "Uptown studio", candidates[2].Location)

	assert.Equal(t, at(9, 0), candidates[0].Start)
	assert.Equal(t, at(10, 0), candidates[1].Start)
	assert.Equal(t, at(14, 0), candidates[2].Start)
}

func TestContainerTimes_DegenerateInputs(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2025, 8, 18, h, 0, 0, 0, time.UTC) }
	ptr := func(v time.Time) *time.Time { return &v }

	containers := []domain.CalendarEvent{
		{ID: "c1", Start: ptr(at(9)), End: ptr(at(11))},
	}

	assert.Empty(t, containerTimes(containers, 0, 30))
	assert.Empty(t, containerTimes(containers, -30, 30))
	assert.Empty(t, containerTimes(nil, 60, 30))
}
