package models

import "time"

// AppointmentStatus enumerates the lifecycle states of an appointment.
// Only StatusScheduled occupies provider time.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// Appointment represents a booked time window with a provider.
// EndTime is always derived from StartTime plus the appointment type's
// duration; the two are only ever rewritten together on a reschedule.
type Appointment struct {
	ID                string            `bson:"id" json:"id"`
	ProviderID        string            `bson:"provider_id" json:"provider_id"`
	CustomerID        string            `bson:"customer_id" json:"customer_id"`
	AppointmentTypeID string            `bson:"appointment_type_id" json:"appointment_type_id"`
	StartTime         time.Time         `bson:"start_time" json:"start_time"`
	EndTime           time.Time         `bson:"end_time" json:"end_time"`
	Status            AppointmentStatus `bson:"status" json:"status"`
	Notes             string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt         time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time         `bson:"updated_at" json:"updated_at"`
}
