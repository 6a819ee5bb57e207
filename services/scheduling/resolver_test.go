package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookify/models"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func weekdayProfile() *models.AvailabilityProfile {
	return &models.AvailabilityProfile{
		ProviderID: "prov-1",
		Weekly: models.WeeklySchedule{
			Monday: []models.ClockInterval{{Start: 540, End: 1020}}, // 09:00-17:00
			Friday: []models.ClockInterval{{Start: 540, End: 720}},  // 09:00-12:00
		},
	}
}

func TestResolveWeeklyDefault(t *testing.T) {
	profile := weekdayProfile()

	assert.Equal(t, []models.ClockInterval{{Start: 540, End: 1020}},
		ResolveWorkingIntervals(profile, monday))

	// Saturday has no schedule entry.
	saturday := monday.AddDate(0, 0, 5)
	assert.Empty(t, ResolveWorkingIntervals(profile, saturday))
}

func TestResolveExceptionReplacesWeekly(t *testing.T) {
	profile := weekdayProfile()
	profile.Exceptions = map[string][]models.ClockInterval{
		"2026-03-02": {{Start: 780, End: 900}}, // 13:00-15:00
	}

	// The exception fully replaces the weekly default, never merges.
	got := ResolveWorkingIntervals(profile, monday)
	assert.Equal(t, []models.ClockInterval{{Start: 780, End: 900}}, got)

	// The following Monday is unaffected.
	nextMonday := monday.AddDate(0, 0, 7)
	assert.Equal(t, []models.ClockInterval{{Start: 540, End: 1020}},
		ResolveWorkingIntervals(profile, nextMonday))
}

func TestResolveEmptyExceptionIsDayOff(t *testing.T) {
	profile := weekdayProfile()
	profile.Exceptions = map[string][]models.ClockInterval{
		"2026-03-02": {},
	}

	assert.Empty(t, ResolveWorkingIntervals(profile, monday))
}

func TestResolveBlackoutWinsOverException(t *testing.T) {
	profile := weekdayProfile()
	profile.Exceptions = map[string][]models.ClockInterval{
		"2026-03-02": {{Start: 780, End: 900}},
	}
	profile.BlackoutDates = []string{"2026-03-02"}

	assert.Empty(t, ResolveWorkingIntervals(profile, monday))
}

func TestResolveNilProfile(t *testing.T) {
	assert.Empty(t, ResolveWorkingIntervals(nil, monday))
}
