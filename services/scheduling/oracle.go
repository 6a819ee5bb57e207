package scheduling

import (
	"fmt"
	"time"

	"bookify/models"
)

// IsAvailable decides whether the half-open window [start, end) is
// bookable for the provider owning profile, given that provider's
// existing appointments. excludeID skips one appointment from the
// overlap check, used when revalidating a reschedule against itself.
//
// The window must start and end on the same calendar date; a window
// spanning midnight is rejected as invalid input.
func IsAvailable(profile *models.AvailabilityProfile, existing []models.Appointment, start, end time.Time, excludeID string) (bool, error) {
	if !start.Before(end) {
		return false, fmt.Errorf("window start %s must precede end %s: %w", start, end, ErrInvalidInput)
	}

	day := startOfDay(start)
	window := models.ClockInterval{
		Start: clockMinutes(day, start),
		End:   clockMinutesCeil(day, end),
	}
	if window.End > 24*60 {
		return false, fmt.Errorf("window %s to %s crosses midnight: %w", start, end, ErrInvalidInput)
	}

	intervals := ResolveWorkingIntervals(profile, start)
	if len(intervals) == 0 {
		return false, nil
	}

	inHours := false
	for _, iv := range intervals {
		if iv.Contains(window) {
			inHours = true
			break
		}
	}
	if !inHours {
		return false, nil
	}

	providerID := ""
	if profile != nil {
		providerID = profile.ProviderID
	}
	for _, appt := range existing {
		if appt.ID == excludeID {
			continue
		}
		if providerID != "" && appt.ProviderID != providerID {
			continue
		}
		if appt.Status != models.StatusScheduled {
			continue
		}
		if Overlaps(start, end, appt.StartTime, appt.EndTime) {
			return false, nil
		}
	}
	return true, nil
}
