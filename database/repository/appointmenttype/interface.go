// File: database/repository/appointmenttype/interface.go
package appointmentTypeRepo

import (
	"context"

	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentTypeRepository persists the service catalogue. GetByID
// returns (nil, nil) when no type exists.
type AppointmentTypeRepository interface {
	Create(ctx context.Context, t models.AppointmentType) error
	GetByID(ctx context.Context, id string) (*models.AppointmentType, error)
	List(ctx context.Context) ([]models.AppointmentType, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type mongoAppointmentTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentTypeRepo constructs a MongoDB AppointmentTypeRepository.
func NewMongoAppointmentTypeRepo(db *mongo.Database) AppointmentTypeRepository {
	return &mongoAppointmentTypeRepo{coll: db.Collection("appointment_types")}
}
