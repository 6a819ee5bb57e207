package catalog

import (
	"context"

	appointmentTypeRepo "bookify/database/repository/appointmenttype"
	"bookify/models"
)

// CreateAppointmentTypeInput is the payload for adding a catalogue entry.
type CreateAppointmentTypeInput struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	Price           float64 `json:"price"`
	Color           string  `json:"color"`
}

// UpdateAppointmentTypeInput carries optional mutations; nil fields are
// left untouched.
type UpdateAppointmentTypeInput struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	DurationMinutes *int     `json:"duration_minutes"`
	Price           *float64 `json:"price"`
	Color           *string  `json:"color"`
}

// AppointmentTypeService manages the bookable service catalogue.
type AppointmentTypeService interface {
	Create(ctx context.Context, in CreateAppointmentTypeInput) (*models.AppointmentType, error)
	Get(ctx context.Context, id string) (*models.AppointmentType, error)
	List(ctx context.Context) ([]models.AppointmentType, error)
	Update(ctx context.Context, id string, in UpdateAppointmentTypeInput) (*models.AppointmentType, error)
	Delete(ctx context.Context, id string) error
}

// DefaultAppointmentTypeService implements AppointmentTypeService.
type DefaultAppointmentTypeService struct {
	Repo appointmentTypeRepo.AppointmentTypeRepository
}
