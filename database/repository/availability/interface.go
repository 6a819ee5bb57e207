// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository persists availability profiles, one document
// per provider. GetByProviderID returns (nil, nil) when the provider
// has no profile yet; an unconfigured provider is "fully unavailable",
// not an error condition.
type AvailabilityRepository interface {
	GetByProviderID(ctx context.Context, providerID string) (*models.AvailabilityProfile, error)
	// Replace upserts the whole profile. Profiles are replaced
	// wholesale, never patched.
	Replace(ctx context.Context, profile models.AvailabilityProfile) error
	Delete(ctx context.Context, providerID string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo(db *mongo.Database) AvailabilityRepository {
	return &mongoAvailabilityRepo{coll: db.Collection("availability")}
}
