package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	appointmentRepo "bookify/database/repository/appointment"
	"bookify/utils"
)

const TypeAppointmentSweep = "appointments:sweep"

// InitSweepWorker runs the background maintenance worker: a periodic
// task that marks scheduled appointments whose end time has passed as
// completed, so stale rows stop occupying provider calendars.
func InitSweepWorker(appointments appointmentRepo.AppointmentRepository, redisOpt asynq.RedisClientOpt, interval time.Duration) {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentSweep, handleSweepTask(appointments))

	scheduler := asynq.NewScheduler(redisOpt, nil)
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeAppointmentSweep, nil)); err != nil {
		log.Fatalf("[SweepWorker] failed to register sweep schedule: %v", err)
	}

	// Start worker and scheduler with retry logic.
	go runWithRetry("worker", func() error { return srv.Run(mux) })
	go runWithRetry("scheduler", func() error { return scheduler.Run() })
}

func runWithRetry(name string, run func() error) {
	const maxAttempts = 5

	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err := run(); err != nil {
			log.Printf("[SweepWorker] attempt %d/%d failed to start %s: %v", attempts, maxAttempts, name, err)
			if attempts == maxAttempts {
				log.Fatalf("[SweepWorker] max retry attempts reached for %s", name)
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		} else {
			return
		}
	}
}

func handleSweepTask(appointments appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		swept, err := appointments.CompletePast(ctx, time.Now())
		if err != nil {
			logger.Error("appointment sweep failed", zap.Error(err))
			return err
		}
		if swept > 0 {
			logger.Info("appointment sweep complete", zap.Int64("completed", swept))
		}
		return nil
	}
}
