package provider

import (
	"context"

	availabilityRepo "bookify/database/repository/availability"
	providerRepo "bookify/database/repository/provider"
	"bookify/models"

	"github.com/go-redis/redis/v8"
)

// CreateProviderInput is the payload for registering a provider.
type CreateProviderInput struct {
	Name             string   `json:"name" binding:"required"`
	Email            string   `json:"email" binding:"required,email"`
	Phone            string   `json:"phone"`
	Specialization   string   `json:"specialization"`
	AppointmentTypes []string `json:"appointment_types"`
}

// UpdateProviderInput carries optional provider mutations; nil fields
// are left untouched.
type UpdateProviderInput struct {
	Name             *string   `json:"name"`
	Email            *string   `json:"email"`
	Phone            *string   `json:"phone"`
	Specialization   *string   `json:"specialization"`
	AppointmentTypes *[]string `json:"appointment_types"`
	Active           *bool     `json:"active"`
}

// ProviderService manages provider records and their availability
// profiles.
type ProviderService interface {
	Register(ctx context.Context, in CreateProviderInput) (*models.Provider, error)
	Get(ctx context.Context, id string) (*models.Provider, error)
	List(ctx context.Context, activeOnly bool) ([]models.Provider, error)
	Update(ctx context.Context, id string, in UpdateProviderInput) (*models.Provider, error)
	Deactivate(ctx context.Context, id string) error
	GetAvailability(ctx context.Context, providerID string) (*models.AvailabilityProfile, error)
	ReplaceAvailability(ctx context.Context, providerID string, profile models.AvailabilityProfile) (*models.AvailabilityProfile, error)
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo         providerRepo.ProviderRepository
	Availability availabilityRepo.AvailabilityRepository

	// Cache, when set, is bumped on profile writes so cached slot
	// searches are invalidated.
	Cache *redis.Client
}
