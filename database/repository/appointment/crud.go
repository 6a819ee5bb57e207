// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookify/models"
)

func (r *mongoAppointmentRepo) Create(ctx context.Context, appt models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, appt)
	return err
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) List(ctx context.Context, f Filter) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if f.ProviderID != "" {
		filter["provider_id"] = f.ProviderID
	}
	if f.CustomerID != "" {
		filter["customer_id"] = f.CustomerID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	timeRange := bson.M{}
	if !f.From.IsZero() {
		timeRange["$gte"] = f.From
	}
	if !f.To.IsZero() {
		timeRange["$lt"] = f.To
	}
	if len(timeRange) > 0 {
		filter["start_time"] = timeRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) ListScheduledInRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error) {
	return r.List(ctx, Filter{
		ProviderID: providerID,
		Status:     models.StatusScheduled,
		From:       from,
		To:         to,
	})
}

func (r *mongoAppointmentRepo) Reschedule(ctx context.Context, id string, start, end time.Time) error {
	return r.updateByID(ctx, id, bson.M{"start_time": start, "end_time": end})
}

func (r *mongoAppointmentRepo) SetStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	return r.updateByID(ctx, id, bson.M{"status": status})
}

func (r *mongoAppointmentRepo) UpdateNotes(ctx context.Context, id, notes string) error {
	return r.updateByID(ctx, id, bson.M{"notes": notes})
}

func (r *mongoAppointmentRepo) updateByID(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updated_at"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CompletePast flips scheduled appointments whose end time has passed
// to completed, so stale rows stop occupying provider time forever.
func (r *mongoAppointmentRepo) CompletePast(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status":   models.StatusScheduled,
		"end_time": bson.M{"$lt": cutoff},
	}
	update := bson.M{"$set": bson.M{
		"status":     models.StatusCompleted,
		"updated_at": time.Now(),
	}}
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
