// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Filter narrows appointment listings. Zero-value fields are ignored.
type Filter struct {
	ProviderID string
	CustomerID string
	Status     models.AppointmentStatus
	From       time.Time
	To         time.Time
}

// AppointmentRepository persists appointment rows. GetByID returns
// (nil, nil) when no appointment exists; store failures are returned
// unchanged.
type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	List(ctx context.Context, f Filter) ([]models.Appointment, error)
	ListScheduledInRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error)
	Reschedule(ctx context.Context, id string, start, end time.Time) error
	SetStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	UpdateNotes(ctx context.Context, id, notes string) error
	CompletePast(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository.
func NewMongoAppointmentRepo(db *mongo.Database) AppointmentRepository {
	return &mongoAppointmentRepo{coll: db.Collection("appointments")}
}
