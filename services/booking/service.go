package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "bookify/database/repository/appointment"
	"bookify/models"
	"bookify/services/scheduling"
	"bookify/utils"
)

// CreateAppointment books a new appointment. The end time is derived
// from the appointment type's duration; the write is gated by the
// availability oracle under the provider's lock so a concurrent request
// cannot land in the same window.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	provider, err := s.Providers.GetByID(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil || !provider.Active {
		return nil, utils.NewNotFound("provider")
	}

	apptType, err := s.Types.GetByID(ctx, in.AppointmentTypeID)
	if err != nil {
		return nil, err
	}
	if apptType == nil {
		return nil, utils.NewNotFound("appointment type")
	}

	customer, err := s.Customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, utils.NewNotFound("customer")
	}

	if !provider.OffersType(in.AppointmentTypeID) {
		return nil, utils.NewInvalidInput("this provider does not offer this appointment type")
	}

	endTime := in.StartTime.Add(time.Duration(apptType.DurationMinutes) * time.Minute)

	lock := s.locks.forProvider(in.ProviderID)
	lock.Lock()
	defer lock.Unlock()

	available, err := s.checkAvailability(ctx, in.ProviderID, in.StartTime, endTime, "")
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, utils.NewConflict("provider is not available at this time")
	}

	now := time.Now()
	appt := models.Appointment{
		ID:                uuid.New().String(),
		ProviderID:        in.ProviderID,
		CustomerID:        in.CustomerID,
		AppointmentTypeID: in.AppointmentTypeID,
		StartTime:         in.StartTime,
		EndTime:           endTime,
		Status:            models.StatusScheduled,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.bumpSlotCache(ctx)
	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("providerID", appt.ProviderID),
		zap.Time("start", appt.StartTime))
	return &appt, nil
}

func (s *DefaultBookingService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, utils.NewNotFound("appointment")
	}
	return appt, nil
}

func (s *DefaultBookingService) ListAppointments(ctx context.Context, f appointmentRepo.Filter) ([]models.Appointment, error) {
	return s.Appointments.List(ctx, f)
}

// UpdateAppointment applies a reschedule, status change or notes edit.
// A reschedule recomputes the end time from the appointment type and
// re-validates availability with the appointment excluded from the
// overlap check. Flipping a non-scheduled appointment back to scheduled
// is validated the same way, so no mutation path can break the
// non-overlap invariant.
func (s *DefaultBookingService) UpdateAppointment(ctx context.Context, id string, in UpdateAppointmentInput) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, utils.NewNotFound("appointment")
	}

	if in.Status != nil && !in.Status.Valid() {
		return nil, utils.NewInvalidInput("unknown appointment status " + string(*in.Status))
	}

	if in.StartTime != nil {
		if err := s.reschedule(ctx, appt, *in.StartTime); err != nil {
			return nil, err
		}
	}

	if in.Status != nil && *in.Status != appt.Status {
		if err := s.changeStatus(ctx, appt, *in.Status, in.StartTime); err != nil {
			return nil, err
		}
	}

	if in.Notes != nil {
		if err := s.Appointments.UpdateNotes(ctx, id, *in.Notes); err != nil {
			return nil, err
		}
	}

	s.bumpSlotCache(ctx)
	return s.Appointments.GetByID(ctx, id)
}

func (s *DefaultBookingService) reschedule(ctx context.Context, appt *models.Appointment, newStart time.Time) error {
	apptType, err := s.Types.GetByID(ctx, appt.AppointmentTypeID)
	if err != nil {
		return err
	}
	if apptType == nil {
		return utils.NewNotFound("appointment type")
	}
	newEnd := newStart.Add(time.Duration(apptType.DurationMinutes) * time.Minute)

	lock := s.locks.forProvider(appt.ProviderID)
	lock.Lock()
	defer lock.Unlock()

	available, err := s.checkAvailability(ctx, appt.ProviderID, newStart, newEnd, appt.ID)
	if err != nil {
		return err
	}
	if !available {
		return utils.NewConflict("provider is not available at this time")
	}

	if err := s.Appointments.Reschedule(ctx, appt.ID, newStart, newEnd); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewRaceLost("appointment changed while rescheduling")
		}
		return err
	}
	appt.StartTime = newStart
	appt.EndTime = newEnd
	return nil
}

func (s *DefaultBookingService) changeStatus(ctx context.Context, appt *models.Appointment, status models.AppointmentStatus, movedTo *time.Time) error {
	// Re-entering the scheduled state puts the window back on the
	// calendar, so it must pass the oracle like a fresh booking.
	if status == models.StatusScheduled && movedTo == nil {
		lock := s.locks.forProvider(appt.ProviderID)
		lock.Lock()
		defer lock.Unlock()

		available, err := s.checkAvailability(ctx, appt.ProviderID, appt.StartTime, appt.EndTime, appt.ID)
		if err != nil {
			return err
		}
		if !available {
			return utils.NewConflict("provider is no longer available at this time")
		}
	}
	return s.Appointments.SetStatus(ctx, appt.ID, status)
}

// CancelAppointment marks the appointment cancelled; the row is kept
// but stops occupying provider time.
func (s *DefaultBookingService) CancelAppointment(ctx context.Context, id string) error {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appt == nil {
		return utils.NewNotFound("appointment")
	}
	if err := s.Appointments.SetStatus(ctx, id, models.StatusCancelled); err != nil {
		return err
	}
	s.bumpSlotCache(ctx)
	return nil
}

// checkAvailability resolves the provider's profile and same-day
// bookings, then asks the oracle. A missing profile means fully
// unavailable, not an error. Invalid windows surface as invalidInput.
func (s *DefaultBookingService) checkAvailability(ctx context.Context, providerID string, start, end time.Time, excludeID string) (bool, error) {
	profile, err := s.Availability.GetByProviderID(ctx, providerID)
	if err != nil {
		return false, err
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	existing, err := s.Appointments.ListScheduledInRange(ctx, providerID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return false, err
	}

	available, err := scheduling.IsAvailable(profile, existing, start, end, excludeID)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidInput) {
			return false, utils.NewInvalidInput(err.Error())
		}
		return false, err
	}
	return available, nil
}
