package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appointmentRepo "bookify/database/repository/appointment"
	"bookify/models"
)

type sweepRecorder struct {
	swept  int64
	err    error
	cutoff time.Time
}

func (r *sweepRecorder) Create(context.Context, models.Appointment) error { return nil }
func (r *sweepRecorder) GetByID(context.Context, string) (*models.Appointment, error) {
	return nil, nil
}
func (r *sweepRecorder) List(context.Context, appointmentRepo.Filter) ([]models.Appointment, error) {
	return nil, nil
}
func (r *sweepRecorder) ListScheduledInRange(context.Context, string, time.Time, time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (r *sweepRecorder) Reschedule(context.Context, string, time.Time, time.Time) error {
	return nil
}
func (r *sweepRecorder) SetStatus(context.Context, string, models.AppointmentStatus) error {
	return nil
}
func (r *sweepRecorder) UpdateNotes(context.Context, string, string) error { return nil }

func (r *sweepRecorder) CompletePast(_ context.Context, cutoff time.Time) (int64, error) {
	r.cutoff = cutoff
	return r.swept, r.err
}

func TestHandleSweepTask(t *testing.T) {
	repo := &sweepRecorder{swept: 3}
	handler := handleSweepTask(repo)

	before := time.Now()
	err := handler(context.Background(), asynq.NewTask(TypeAppointmentSweep, nil))
	require.NoError(t, err)

	// The sweep cutoff is "now": nothing still in the future is touched.
	assert.False(t, repo.cutoff.Before(before))
	assert.False(t, repo.cutoff.After(time.Now()))
}

func TestHandleSweepTaskPropagatesError(t *testing.T) {
	repo := &sweepRecorder{err: errors.New("store offline")}
	handler := handleSweepTask(repo)

	err := handler(context.Background(), asynq.NewTask(TypeAppointmentSweep, nil))
	assert.EqualError(t, err, "store offline")
}
