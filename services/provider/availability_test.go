package provider

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookify/models"
	"bookify/utils"
)

type stubProviderRepo struct {
	items map[string]models.Provider
}

func (r *stubProviderRepo) Create(_ context.Context, p models.Provider) error {
	r.items[p.ID] = p
	return nil
}

func (r *stubProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *stubProviderRepo) List(_ context.Context, activeOnly bool) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.items {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProviderRepo) ListActive(_ context.Context, appointmentTypeID string) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.items {
		if p.Active && (appointmentTypeID == "" || p.OffersType(appointmentTypeID)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProviderRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (r *stubProviderRepo) Deactivate(_ context.Context, id string) error {
	p := r.items[id]
	p.Active = false
	r.items[id] = p
	return nil
}

type stubAvailabilityRepo struct {
	items map[string]models.AvailabilityProfile
}

func (r *stubAvailabilityRepo) GetByProviderID(_ context.Context, providerID string) (*models.AvailabilityProfile, error) {
	p, ok := r.items[providerID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *stubAvailabilityRepo) Replace(_ context.Context, profile models.AvailabilityProfile) error {
	r.items[profile.ProviderID] = profile
	return nil
}

func (r *stubAvailabilityRepo) Delete(_ context.Context, providerID string) error {
	delete(r.items, providerID)
	return nil
}

func newService() (*DefaultProviderService, *stubAvailabilityRepo) {
	avail := &stubAvailabilityRepo{items: map[string]models.AvailabilityProfile{}}
	svc := &DefaultProviderService{
		Repo: &stubProviderRepo{items: map[string]models.Provider{
			"prov-1": {ID: "prov-1", Name: "Dr. Adams", Active: true},
		}},
		Availability: avail,
	}
	return svc, avail
}

func TestRegisterProvisionsEmptyProfile(t *testing.T) {
	svc, avail := newService()

	p, err := svc.Register(context.Background(), CreateProviderInput{
		Name:  "Dr. Baker",
		Email: "baker@example.com",
	})
	require.NoError(t, err)
	assert.True(t, p.Active)

	profile, ok := avail.items[p.ID]
	require.True(t, ok, "registration must provision a profile")
	assert.Empty(t, profile.Weekly.Monday)
	assert.Empty(t, profile.BlackoutDates)
}

func TestReplaceAvailabilityRoundTrip(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	in := models.AvailabilityProfile{
		Weekly: models.WeeklySchedule{
			Monday: []models.ClockInterval{{Start: 540, End: 720}, {Start: 780, End: 1020}},
		},
		Exceptions: map[string][]models.ClockInterval{
			"2026-03-09": {},
			"2026-03-16": {{Start: 600, End: 660}},
		},
		BlackoutDates: []string{"2026-04-01"},
	}

	saved, err := svc.ReplaceAvailability(ctx, "prov-1", in)
	require.NoError(t, err)
	assert.Equal(t, "prov-1", saved.ProviderID, "provider ID comes from the path, not the body")

	got, err := svc.GetAvailability(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestReplaceAvailabilityUnknownProvider(t *testing.T) {
	svc, _ := newService()

	_, err := svc.ReplaceAvailability(context.Background(), "missing", models.AvailabilityProfile{})
	assert.True(t, utils.IsNotFound(err))

	_, err = svc.GetAvailability(context.Background(), "missing")
	assert.True(t, utils.IsNotFound(err))
}

func TestGetAvailabilityWithoutProfile(t *testing.T) {
	svc, avail := newService()
	delete(avail.items, "prov-1")

	_, err := svc.GetAvailability(context.Background(), "prov-1")
	assert.True(t, utils.IsNotFound(err))
}

func TestReplaceAvailabilityRejectsBadProfiles(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	cases := []struct {
		name    string
		profile models.AvailabilityProfile
	}{
		{
			name: "inverted interval",
			profile: models.AvailabilityProfile{
				Weekly: models.WeeklySchedule{Monday: []models.ClockInterval{{Start: 720, End: 540}}},
			},
		},
		{
			name: "overlapping intervals",
			profile: models.AvailabilityProfile{
				Weekly: models.WeeklySchedule{Monday: []models.ClockInterval{{Start: 540, End: 720}, {Start: 700, End: 800}}},
			},
		},
		{
			name: "unsorted intervals",
			profile: models.AvailabilityProfile{
				Weekly: models.WeeklySchedule{Tuesday: []models.ClockInterval{{Start: 780, End: 900}, {Start: 540, End: 600}}},
			},
		},
		{
			name: "interval past midnight",
			profile: models.AvailabilityProfile{
				Weekly: models.WeeklySchedule{Friday: []models.ClockInterval{{Start: 1380, End: 1500}}},
			},
		},
		{
			name: "malformed exception date",
			profile: models.AvailabilityProfile{
				Exceptions: map[string][]models.ClockInterval{"03/02/2026": {}},
			},
		},
		{
			name: "bad interval inside exception",
			profile: models.AvailabilityProfile{
				Exceptions: map[string][]models.ClockInterval{"2026-03-02": {{Start: 600, End: 600}}},
			},
		},
		{
			name: "malformed blackout date",
			profile: models.AvailabilityProfile{
				BlackoutDates: []string{"next tuesday"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ReplaceAvailability(ctx, "prov-1", tc.profile)
			assert.True(t, utils.IsInvalidInput(err), "expected invalidInput, got %v", err)
		})
	}
}

func TestProviderWritesBumpSearchCache(t *testing.T) {
	svc, _ := newService()
	// Bumping the slot-search version is best-effort: provider writes
	// must succeed even when the cache is unreachable.
	svc.Cache = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	ctx := context.Background()

	name := "Dr. A. Adams"
	_, err := svc.Update(ctx, "prov-1", UpdateProviderInput{Name: &name})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, "prov-1"))
}

func TestAdjacentIntervalsAreLegal(t *testing.T) {
	svc, _ := newService()

	// 09:00-12:00 then 12:00-17:00 touch but do not overlap.
	_, err := svc.ReplaceAvailability(context.Background(), "prov-1", models.AvailabilityProfile{
		Weekly: models.WeeklySchedule{
			Monday: []models.ClockInterval{{Start: 540, End: 720}, {Start: 720, End: 1020}},
		},
	})
	assert.NoError(t, err)
}
