package booking

import (
	"context"
	"time"

	appointmentRepo "bookify/database/repository/appointment"
	appointmentTypeRepo "bookify/database/repository/appointmenttype"
	availabilityRepo "bookify/database/repository/availability"
	customerRepo "bookify/database/repository/customer"
	providerRepo "bookify/database/repository/provider"
	"bookify/models"

	"github.com/go-redis/redis/v8"
)

// CreateAppointmentInput is the payload for booking a new appointment.
// The end time is derived from the appointment type's duration.
type CreateAppointmentInput struct {
	ProviderID        string    `json:"provider_id" binding:"required"`
	CustomerID        string    `json:"customer_id" binding:"required"`
	AppointmentTypeID string    `json:"appointment_type_id" binding:"required"`
	StartTime         time.Time `json:"start_time" binding:"required"`
	Notes             string    `json:"notes"`
}

// UpdateAppointmentInput carries optional appointment mutations. A new
// StartTime triggers a reschedule: the end time is recomputed and
// availability is re-validated with the appointment excluded from the
// overlap check.
type UpdateAppointmentInput struct {
	StartTime *time.Time                `json:"start_time"`
	Status    *models.AppointmentStatus `json:"status"`
	Notes     *string                   `json:"notes"`
}

// BookingService is the appointment booking and slot search surface.
type BookingService interface {
	CreateAppointment(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, f appointmentRepo.Filter) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, in UpdateAppointmentInput) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, id string) error
	FindAvailableSlots(ctx context.Context, q models.SlotQuery) ([]models.CandidateSlot, error)
}

// DefaultBookingService implements BookingService on top of the entity
// repositories and the pure scheduling core.
type DefaultBookingService struct {
	Appointments appointmentRepo.AppointmentRepository
	Providers    providerRepo.ProviderRepository
	Availability availabilityRepo.AvailabilityRepository
	Types        appointmentTypeRepo.AppointmentTypeRepository
	Customers    customerRepo.CustomerRepository

	// Cache is optional; when nil slot searches always recompute.
	Cache    *redis.Client
	CacheTTL time.Duration

	// Workers bounds the slot-search fan-out pool; zero means
	// defaultSlotWorkers.
	Workers int

	locks providerLocks
}
