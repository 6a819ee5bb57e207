package scheduling

import (
	"fmt"
	"time"

	"bookify/models"
)

// DefaultSlotMinutes is the slot duration assumed when a query names no
// appointment type, and the cap on the stride between candidate starts.
const DefaultSlotMinutes = 30

// GenerateSlots enumerates every bookable window of the given duration
// for one provider across the half-open date range
// [rangeStart, rangeEnd). Bookings for the whole range are passed in
// once rather than re-queried per day.
//
// For each date the resolved working intervals are walked with a stride
// of min(duration, 30 minutes); a window is emitted while it still fits
// inside the interval and does not overlap a scheduled appointment.
// All fit arithmetic is done in time.Duration, so sub-minute durations
// stride correctly and never emit a slot past an interval's close.
// Output is ascending by start time, which falls out of the
// day/interval/stride iteration order.
func GenerateSlots(provider models.ProviderRef, profile *models.AvailabilityProfile, bookings []models.Appointment, rangeStart, rangeEnd time.Time, duration time.Duration) ([]models.CandidateSlot, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("slot duration %s must be positive: %w", duration, ErrInvalidInput)
	}
	if profile == nil || !rangeStart.Before(rangeEnd) {
		return nil, nil
	}

	stride := duration
	if stride > DefaultSlotMinutes*time.Minute {
		stride = DefaultSlotMinutes * time.Minute
	}

	occupied := make([]models.Appointment, 0, len(bookings))
	for _, appt := range bookings {
		if appt.ProviderID == provider.ID && appt.Status == models.StatusScheduled {
			occupied = append(occupied, appt)
		}
	}

	var slots []models.CandidateSlot
	for day := startOfDay(rangeStart); day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
		for _, iv := range ResolveWorkingIntervals(profile, day) {
			ivStart := time.Duration(iv.Start) * time.Minute
			ivEnd := time.Duration(iv.End) * time.Minute
			for cursor := ivStart; cursor+duration <= ivEnd; cursor += stride {
				slotStart := day.Add(cursor)
				if slotStart.Before(rangeStart) {
					continue
				}
				if !slotStart.Before(rangeEnd) {
					break
				}
				slotEnd := slotStart.Add(duration)

				taken := false
				for _, appt := range occupied {
					if Overlaps(slotStart, slotEnd, appt.StartTime, appt.EndTime) {
						taken = true
						break
					}
				}
				if taken {
					continue
				}
				slots = append(slots, models.CandidateSlot{
					ProviderID:   provider.ID,
					ProviderName: provider.Name,
					StartTime:    slotStart,
					EndTime:      slotEnd,
				})
			}
		}
	}
	return slots, nil
}
