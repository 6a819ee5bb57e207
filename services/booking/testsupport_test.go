package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	appointmentRepo "bookify/database/repository/appointment"
	"bookify/models"
	"bookify/services/scheduling"
)

// In-memory repository doubles. They mirror the (nil, nil)-on-missing
// contract of the Mongo implementations so service behaviour under test
// matches production.

type memAppointmentRepo struct {
	mu    sync.Mutex
	items map[string]models.Appointment
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{items: make(map[string]models.Appointment)}
}

func (r *memAppointmentRepo) Create(_ context.Context, appt models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[appt.ID] = appt
	return nil
}

func (r *memAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &appt, nil
}

func (r *memAppointmentRepo) List(_ context.Context, f appointmentRepo.Filter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, appt := range r.items {
		if f.ProviderID != "" && appt.ProviderID != f.ProviderID {
			continue
		}
		if f.CustomerID != "" && appt.CustomerID != f.CustomerID {
			continue
		}
		if f.Status != "" && appt.Status != f.Status {
			continue
		}
		if !f.From.IsZero() && appt.StartTime.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !appt.StartTime.Before(f.To) {
			continue
		}
		out = append(out, appt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *memAppointmentRepo) ListScheduledInRange(_ context.Context, providerID string, from, to time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, appt := range r.items {
		if appt.ProviderID != providerID || appt.Status != models.StatusScheduled {
			continue
		}
		if appt.StartTime.Before(to) && from.Before(appt.EndTime) {
			out = append(out, appt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *memAppointmentRepo) Reschedule(_ context.Context, id string, start, end time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.items[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	appt.StartTime = start
	appt.EndTime = end
	appt.UpdatedAt = time.Now()
	r.items[id] = appt
	return nil
}

func (r *memAppointmentRepo) SetStatus(_ context.Context, id string, status models.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.items[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	appt.Status = status
	appt.UpdatedAt = time.Now()
	r.items[id] = appt
	return nil
}

func (r *memAppointmentRepo) UpdateNotes(_ context.Context, id, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.items[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	appt.Notes = notes
	appt.UpdatedAt = time.Now()
	r.items[id] = appt
	return nil
}

func (r *memAppointmentRepo) CompletePast(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, appt := range r.items {
		if appt.Status == models.StatusScheduled && appt.EndTime.Before(cutoff) {
			appt.Status = models.StatusCompleted
			r.items[id] = appt
			n++
		}
	}
	return n, nil
}

type memProviderRepo struct {
	items map[string]models.Provider
}

func (r *memProviderRepo) Create(_ context.Context, p models.Provider) error {
	r.items[p.ID] = p
	return nil
}

func (r *memProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProviderRepo) List(_ context.Context, activeOnly bool) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.items {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProviderRepo) ListActive(_ context.Context, appointmentTypeID string) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.items {
		if !p.Active {
			continue
		}
		if appointmentTypeID != "" && !p.OffersType(appointmentTypeID) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProviderRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (r *memProviderRepo) Deactivate(_ context.Context, id string) error {
	p, ok := r.items[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.Active = false
	r.items[id] = p
	return nil
}

type memAvailabilityRepo struct {
	items map[string]models.AvailabilityProfile
}

func (r *memAvailabilityRepo) GetByProviderID(_ context.Context, providerID string) (*models.AvailabilityProfile, error) {
	p, ok := r.items[providerID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memAvailabilityRepo) Replace(_ context.Context, profile models.AvailabilityProfile) error {
	r.items[profile.ProviderID] = profile
	return nil
}

func (r *memAvailabilityRepo) Delete(_ context.Context, providerID string) error {
	delete(r.items, providerID)
	return nil
}

type memAppointmentTypeRepo struct {
	items map[string]models.AppointmentType
}

func (r *memAppointmentTypeRepo) Create(_ context.Context, t models.AppointmentType) error {
	r.items[t.ID] = t
	return nil
}

func (r *memAppointmentTypeRepo) GetByID(_ context.Context, id string) (*models.AppointmentType, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *memAppointmentTypeRepo) List(_ context.Context) ([]models.AppointmentType, error) {
	var out []models.AppointmentType
	for _, t := range r.items {
		out = append(out, t)
	}
	return out, nil
}

func (r *memAppointmentTypeRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (r *memAppointmentTypeRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memCustomerRepo struct {
	items map[string]models.Customer
}

func (r *memCustomerRepo) Create(_ context.Context, c models.Customer) error {
	r.items[c.ID] = c
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id string) (*models.Customer, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCustomerRepo) List(_ context.Context) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range r.items {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCustomerRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

// fixture wires a DefaultBookingService over fresh in-memory repos with
// one active provider (Mon-Fri 09:00-17:00), a 30-minute type and a
// customer.
type fixture struct {
	svc          *DefaultBookingService
	appointments *memAppointmentRepo
	providers    *memProviderRepo
	availability *memAvailabilityRepo
	types        *memAppointmentTypeRepo
	customers    *memCustomerRepo
}

const (
	testProviderID = "prov-1"
	testCustomerID = "cust-1"
	testTypeID     = "type-30"
)

func newFixture() *fixture {
	weekday := []models.ClockInterval{{Start: 540, End: 1020}}
	f := &fixture{
		appointments: newMemAppointmentRepo(),
		providers: &memProviderRepo{items: map[string]models.Provider{
			testProviderID: {
				ID:               testProviderID,
				Name:             "Dr. Adams",
				Email:            "adams@example.com",
				AppointmentTypes: []string{testTypeID},
				Active:           true,
			},
		}},
		availability: &memAvailabilityRepo{items: map[string]models.AvailabilityProfile{
			testProviderID: {
				ProviderID: testProviderID,
				Weekly: models.WeeklySchedule{
					Monday:    weekday,
					Tuesday:   weekday,
					Wednesday: weekday,
					Thursday:  weekday,
					Friday:    weekday,
				},
			},
		}},
		types: &memAppointmentTypeRepo{items: map[string]models.AppointmentType{
			testTypeID: {ID: testTypeID, Name: "Consultation", DurationMinutes: 30, Price: 50},
		}},
		customers: &memCustomerRepo{items: map[string]models.Customer{
			testCustomerID: {ID: testCustomerID, Name: "Jo Customer", Email: "jo@example.com"},
		}},
	}
	f.svc = &DefaultBookingService{
		Appointments: f.appointments,
		Providers:    f.providers,
		Availability: f.availability,
		Types:        f.types,
		Customers:    f.customers,
	}
	return f
}

// 2026-03-02 is a Monday.
func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func defaultDuration() time.Duration {
	return time.Duration(scheduling.DefaultSlotMinutes) * time.Minute
}
