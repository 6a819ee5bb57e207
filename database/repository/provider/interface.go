// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"

	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository persists provider records. GetByID returns
// (nil, nil) when no provider exists.
type ProviderRepository interface {
	Create(ctx context.Context, p models.Provider) error
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	List(ctx context.Context, activeOnly bool) ([]models.Provider, error)
	// ListActive returns active providers; when appointmentTypeID is
	// non-empty only providers offering that type are returned.
	ListActive(ctx context.Context, appointmentTypeID string) ([]models.Provider, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Deactivate(ctx context.Context, id string) error
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a MongoDB ProviderRepository.
func NewMongoProviderRepo(db *mongo.Database) ProviderRepository {
	return &mongoProviderRepo{coll: db.Collection("providers")}
}
