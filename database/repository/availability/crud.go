// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookify/models"
)

func (r *mongoAvailabilityRepo) GetByProviderID(ctx context.Context, providerID string) (*models.AvailabilityProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var profile models.AvailabilityProfile
	err := r.coll.FindOne(ctx, bson.M{"provider_id": providerID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *mongoAvailabilityRepo) Replace(ctx context.Context, profile models.AvailabilityProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"provider_id": profile.ProviderID}, profile, opts)
	return err
}

func (r *mongoAvailabilityRepo) Delete(ctx context.Context, providerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"provider_id": providerID})
	return err
}
