// File: database/repository/provider/crud.go
package providerRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bookify/models"
)

func (r *mongoProviderRepo) Create(ctx context.Context, p models.Provider) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *mongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Provider
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoProviderRepo) List(ctx context.Context, activeOnly bool) ([]models.Provider, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	return r.find(ctx, filter)
}

func (r *mongoProviderRepo) ListActive(ctx context.Context, appointmentTypeID string) ([]models.Provider, error) {
	filter := bson.M{"active": true}
	if appointmentTypeID != "" {
		filter["appointment_types"] = appointmentTypeID
	}
	return r.find(ctx, filter)
}

func (r *mongoProviderRepo) find(ctx context.Context, filter bson.M) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *mongoProviderRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoProviderRepo) Deactivate(ctx context.Context, id string) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"active": false})
}
