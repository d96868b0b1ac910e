package availability

import (
	"testing"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveTestWindow(t *testing.T, tz string, now time.Time) models.SearchWindow {
	t.Helper()
	query := validQuery()
	query.MemberTimezone = tz

	window, err := resolveWindow(query, now, testLimits)
	require.NoError(t, err)
	return window
}

func eligibleSchedule(id string, blocks ...models.ScheduleBlock) models.PractitionerSchedule {
	return models.PractitionerSchedule{
		PractitionerID:  id,
		Blocks:          blocks,
		Capacity:        1,
		MinimumDuration: 60 * time.Minute,
	}
}

func availableDates(days []models.DayAvailability) []string {
	var dates []string
	for _, day := range days {
		if day.HasAvailability {
			dates = append(dates, day.Date)
		}
	}
	return dates
}

func TestBuildDayAvailabilities_EmptySchedulesStillEmitEveryDay(t *testing.T) {
	window := resolveTestWindow(t, "UTC", mustParse("2025-03-01T12:00:00Z"))

	days := buildDayAvailabilities(window, nil)

	require.Len(t, days, 30)
	for i, day := range days {
		assert.False(t, day.HasAvailability)
		assert.Equal(t, mustParse("2025-03-01T00:00:00Z").AddDate(0, 0, i).Format(models.DayDateFormat), day.Date)
	}
}

func TestBuildDayAvailabilities_DatesContiguousAndUnique(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// The window crosses the March 9 spring-forward transition.
	window := resolveTestWindow(t, "America/New_York", mustParse("2025-03-01T12:00:00Z"))

	days := buildDayAvailabilities(window, nil)
	require.Len(t, days, 30)

	for i := 1; i < len(days); i++ {
		prev, err := time.ParseInLocation(models.DayDateFormat, days[i-1].Date, loc)
		require.NoError(t, err)
		assert.Equal(t, prev.AddDate(0, 0, 1).Format(models.DayDateFormat), days[i].Date)
	}
}

func TestBuildDayAvailabilities_UnionAcrossPractitioners(t *testing.T) {
	window := resolveTestWindow(t, "UTC", mustParse("2025-03-01T00:00:00Z"))

	schedules := []models.PractitionerSchedule{
		eligibleSchedule("prac-1", block("2025-03-03T09:00:00Z", "2025-03-03T12:00:00Z", 1)),
		eligibleSchedule("prac-2", block("2025-03-07T09:00:00Z", "2025-03-07T12:00:00Z", 1)),
	}

	days := buildDayAvailabilities(window, schedules)

	require.Len(t, days, 30)
	assert.Equal(t, []string{"2025-03-03", "2025-03-07"}, availableDates(days))
}

func TestBuildDayAvailabilities_IneligiblePractitionerContributesNothing(t *testing.T) {
	window := resolveTestWindow(t, "UTC", mustParse("2025-03-01T00:00:00Z"))

	ineligible := eligibleSchedule("prac-1", block("2025-03-03T09:00:00Z", "2025-03-03T17:00:00Z", 1))
	ineligible.MinimumDuration = 0

	days := buildDayAvailabilities(window, []models.PractitionerSchedule{ineligible})
	assert.Empty(t, availableDates(days))
}

func TestBuildDayAvailabilities_PositiveOffsetBlockLandsOnDayZero(t *testing.T) {
	// 02:00 UTC is already late morning in Japan; a block on the previous UTC
	// evening belongs to the member's first local day.
	window := resolveTestWindow(t, "Japan", mustParse("2025-03-10T02:00:00Z"))

	schedules := []models.PractitionerSchedule{
		eligibleSchedule("prac-1", block("2025-03-09T22:00:00Z", "2025-03-09T23:30:00Z", 1)),
	}

	days := buildDayAvailabilities(window, schedules)
	require.Len(t, days, 30)
	assert.Equal(t, "2025-03-10", days[0].Date)
	assert.True(t, days[0].HasAvailability)
}

func TestBuildDayAvailabilities_NegativeOffsetBlockLandsOnLastDay(t *testing.T) {
	// The block starts on the 31st UTC calendar day of the window, but in New
	// York it is still the evening of March 30, the last local day.
	window := resolveTestWindow(t, "America/New_York", mustParse("2025-03-01T12:00:00Z"))

	schedules := []models.PractitionerSchedule{
		eligibleSchedule("prac-1", block("2025-03-31T01:00:00Z", "2025-03-31T02:30:00Z", 1)),
	}

	days := buildDayAvailabilities(window, schedules)
	require.Len(t, days, 30)
	assert.Equal(t, "2025-03-30", days[29].Date)
	assert.True(t, days[29].HasAvailability)
	assert.Equal(t, []string{"2025-03-30"}, availableDates(days))
}

func TestBuildDayAvailabilities_DSTShortDay(t *testing.T) {
	// March 9, 2025 is only 23 hours long in New York; a block that afternoon
	// still lands on the right local date.
	window := resolveTestWindow(t, "America/New_York", mustParse("2025-03-08T05:00:00Z"))

	schedules := []models.PractitionerSchedule{
		eligibleSchedule("prac-1", block("2025-03-09T18:00:00Z", "2025-03-09T19:30:00Z", 1)),
	}

	days := buildDayAvailabilities(window, schedules)
	assert.Equal(t, []string{"2025-03-09"}, availableDates(days))
}
