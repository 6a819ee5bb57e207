package provider

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bookify/models"
	"bookify/utils"
)

func (s *DefaultProviderService) GetAvailability(ctx context.Context, providerID string) (*models.AvailabilityProfile, error) {
	if _, err := s.Get(ctx, providerID); err != nil {
		return nil, err
	}
	profile, err := s.Availability.GetByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NewNotFound("availability profile")
	}
	return profile, nil
}

// ReplaceAvailability swaps in a whole new profile for the provider.
// The profile is validated on write; readers (the resolver, the slot
// generator) assume well-formed data.
func (s *DefaultProviderService) ReplaceAvailability(ctx context.Context, providerID string, profile models.AvailabilityProfile) (*models.AvailabilityProfile, error) {
	if _, err := s.Get(ctx, providerID); err != nil {
		return nil, err
	}

	profile.ProviderID = providerID
	if err := validateProfile(profile); err != nil {
		return nil, utils.NewInvalidInput(err.Error())
	}

	if err := s.Availability.Replace(ctx, profile); err != nil {
		return nil, err
	}
	utils.BumpSlotVersion(ctx, s.Cache)
	utils.GetLogger().Info("availability profile replaced", zap.String("providerID", providerID))
	return &profile, nil
}

// validateProfile enforces the write-side schedule invariants: every
// interval well-formed, each day's intervals sorted and disjoint, and
// every exception or blackout date parseable.
func validateProfile(profile models.AvailabilityProfile) error {
	days := map[string][]models.ClockInterval{
		"monday":    profile.Weekly.Monday,
		"tuesday":   profile.Weekly.Tuesday,
		"wednesday": profile.Weekly.Wednesday,
		"thursday":  profile.Weekly.Thursday,
		"friday":    profile.Weekly.Friday,
		"saturday":  profile.Weekly.Saturday,
		"sunday":    profile.Weekly.Sunday,
	}
	for day, intervals := range days {
		if err := validateIntervals(intervals); err != nil {
			return fmt.Errorf("weekly schedule %s: %w", day, err)
		}
	}

	for date, intervals := range profile.Exceptions {
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			return fmt.Errorf("exception date %q is not a valid %s date", date, models.DateLayout)
		}
		// An empty exception is a legal "day off" override.
		if err := validateIntervals(intervals); err != nil {
			return fmt.Errorf("exception %s: %w", date, err)
		}
	}

	for _, date := range profile.BlackoutDates {
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			return fmt.Errorf("blackout date %q is not a valid %s date", date, models.DateLayout)
		}
	}
	return nil
}

func validateIntervals(intervals []models.ClockInterval) error {
	for i, iv := range intervals {
		if err := iv.Validate(); err != nil {
			return err
		}
		if i > 0 && iv.Start < intervals[i-1].End {
			return fmt.Errorf("intervals %s and %s must be sorted and disjoint",
				intervals[i-1].Label(), iv.Label())
		}
	}
	return nil
}
