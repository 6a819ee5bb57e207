package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"bookify/models"
	"bookify/services/scheduling"
	"bookify/utils"
)

const defaultSlotWorkers = 8

// FindAvailableSlots answers an availability search across one or many
// providers. The duration comes from the query's appointment type,
// defaulting to 30 minutes. Per-provider generation is independent, so
// candidates are fanned out over a fixed-size worker pool and the
// merged result is sorted ascending by start time, tie-broken by
// provider ID so equal starts order deterministically.
func (s *DefaultBookingService) FindAvailableSlots(ctx context.Context, q models.SlotQuery) ([]models.CandidateSlot, error) {
	logger := utils.GetLogger()

	duration := time.Duration(scheduling.DefaultSlotMinutes) * time.Minute
	if q.AppointmentTypeID != "" {
		apptType, err := s.Types.GetByID(ctx, q.AppointmentTypeID)
		if err != nil {
			return nil, err
		}
		if apptType == nil {
			return nil, utils.NewNotFound("appointment type")
		}
		duration = time.Duration(apptType.DurationMinutes) * time.Minute
	}

	candidates, err := s.candidateProviders(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []models.CandidateSlot{}, nil
	}

	cacheKey := s.slotCacheKey(ctx, q, duration)
	if cached, ok := s.cachedSlots(ctx, cacheKey); ok {
		return cached, nil
	}

	slots, err := s.generateAcrossProviders(ctx, candidates, q.StartDate, q.EndDate, duration)
	if err != nil {
		return nil, err
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].StartTime.Equal(slots[j].StartTime) {
			return slots[i].ProviderID < slots[j].ProviderID
		}
		return slots[i].StartTime.Before(slots[j].StartTime)
	})

	s.storeSlots(ctx, cacheKey, slots)
	logger.Debug("slot search complete",
		zap.Int("providers", len(candidates)),
		zap.Int("slots", len(slots)))
	return slots, nil
}

func (s *DefaultBookingService) candidateProviders(ctx context.Context, q models.SlotQuery) ([]models.ProviderRef, error) {
	if q.ProviderID != "" {
		provider, err := s.Providers.GetByID(ctx, q.ProviderID)
		if err != nil {
			return nil, err
		}
		if provider == nil {
			return nil, utils.NewNotFound("provider")
		}
		return []models.ProviderRef{{ID: provider.ID, Name: provider.Name}}, nil
	}

	providers, err := s.Providers.ListActive(ctx, q.AppointmentTypeID)
	if err != nil {
		return nil, err
	}
	refs := make([]models.ProviderRef, 0, len(providers))
	for _, p := range providers {
		refs = append(refs, models.ProviderRef{ID: p.ID, Name: p.Name})
	}
	return refs, nil
}

// generateAcrossProviders runs the slot generator once per candidate on
// a bounded pool. Profiles and bookings are fetched per provider before
// the pure computation runs; a cancelled context stops further tasks
// from being issued. The first store failure aborts the search.
func (s *DefaultBookingService) generateAcrossProviders(ctx context.Context, candidates []models.ProviderRef, rangeStart, rangeEnd time.Time, duration time.Duration) ([]models.CandidateSlot, error) {
	workers := s.Workers
	if workers <= 0 {
		workers = defaultSlotWorkers
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	jobs := make(chan models.ProviderRef)
	results := make(chan []models.CandidateSlot, len(candidates))
	errCh := make(chan error, len(candidates))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ref := range jobs {
				slots, err := s.generateForProvider(ctx, ref, rangeStart, rangeEnd, duration)
				if err != nil {
					errCh <- err
					continue
				}
				results <- slots
			}
		}()
	}

	for _, ref := range candidates {
		if ctx.Err() != nil {
			break
		}
		jobs <- ref
	}
	close(jobs)
	wg.Wait()
	close(results)
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var merged []models.CandidateSlot
	for slots := range results {
		merged = append(merged, slots...)
	}
	return merged, nil
}

func (s *DefaultBookingService) generateForProvider(ctx context.Context, ref models.ProviderRef, rangeStart, rangeEnd time.Time, duration time.Duration) ([]models.CandidateSlot, error) {
	profile, err := s.Availability.GetByProviderID(ctx, ref.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	// Fetch from the start of the first day so bookings that began just
	// before a mid-day range start still block overlapping slots.
	dayStart := time.Date(rangeStart.Year(), rangeStart.Month(), rangeStart.Day(), 0, 0, 0, 0, rangeStart.Location())
	bookings, err := s.Appointments.ListScheduledInRange(ctx, ref.ID, dayStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	return scheduling.GenerateSlots(ref, profile, bookings, rangeStart, rangeEnd, duration)
}

// Slot-search responses are cached under a key that embeds a global
// version counter; booking and profile writes bump the counter, so
// stale entries are never served and simply age out via TTL.

func (s *DefaultBookingService) slotCacheKey(ctx context.Context, q models.SlotQuery, duration time.Duration) string {
	if s.Cache == nil {
		return ""
	}
	version, err := s.Cache.Get(ctx, utils.SlotVersionKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			// Unknown current version: a hit could resurrect results
			// from before a bump, so skip the cache for this search.
			return ""
		}
		// No bump has ever happened; the counter starts at zero.
		version = "0"
	}
	return fmt.Sprintf("slots:v%s:%s:%s:%d:%d:%d",
		version, q.ProviderID, q.AppointmentTypeID,
		q.StartDate.Unix(), q.EndDate.Unix(), int(duration/time.Minute))
}

func (s *DefaultBookingService) cachedSlots(ctx context.Context, key string) ([]models.CandidateSlot, bool) {
	if s.Cache == nil || key == "" {
		return nil, false
	}
	payload, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.CandidateSlot
	if err := json.Unmarshal([]byte(payload), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultBookingService) storeSlots(ctx context.Context, key string, slots []models.CandidateSlot) {
	if s.Cache == nil || key == "" {
		return
	}
	payload, err := json.Marshal(slots)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if err := s.Cache.Set(ctx, key, payload, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache slot search", zap.Error(err))
	}
}

func (s *DefaultBookingService) bumpSlotCache(ctx context.Context) {
	utils.BumpSlotVersion(ctx, s.Cache)
}
