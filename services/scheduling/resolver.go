package scheduling

import (
	"time"

	"bookify/models"
)

// ResolveWorkingIntervals returns the authoritative working intervals
// for the provider on the given calendar date. Precedence: a blackout
// date yields nothing; otherwise a date exception fully replaces the
// weekly default; otherwise the weekly schedule's weekday entry applies.
// A nil profile means the provider has no bookable time at all.
func ResolveWorkingIntervals(profile *models.AvailabilityProfile, date time.Time) []models.ClockInterval {
	if profile == nil {
		return nil
	}
	key := models.DateKey(date)
	for _, blackout := range profile.BlackoutDates {
		if blackout == key {
			return nil
		}
	}
	if intervals, ok := profile.Exceptions[key]; ok {
		return intervals
	}
	return profile.Weekly.ForWeekday(date.Weekday())
}
