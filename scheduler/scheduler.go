// Package scheduler runs periodic background jobs, currently the automatic
// refresh of inspiration sources.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Job represents a scheduled task
type Job func(ctx context.Context) error

// Scheduler manages periodic tasks
type Scheduler struct {
	cron *cron.Cron
	jobs map[string]cron.EntryID
}

// New creates a new scheduler running in the given timezone
func New(timezone string) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %s: %w", timezone, err)
	}

	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
		jobs: make(map[string]cron.EntryID),
	}, nil
}

// AddJob adds a job with a cron schedule, e.g. "0 7 * * *" for 7:00 daily.
// Each run gets its own bounded context so a stuck job cannot pile up forever.
func (s *Scheduler) AddJob(name, schedule string, job Job) error {
	entryID, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		start := time.Now()
		log.Info().Str("job", name).Msg("Starting scheduled job")

		if err := job(ctx); err != nil {
			log.Error().Err(err).Str("job", name).Msg("Scheduled job failed")
			return
		}
		log.Info().Str("job", name).Dur("elapsed", time.Since(start)).Msg("Scheduled job completed")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	s.jobs[name] = entryID
	log.Info().Str("job", name).Str("schedule", schedule).Msg("Registered scheduled job")
	return nil
}

// AddRefreshJob schedules the source auto-refresh every intervalHours hours.
func (s *Scheduler) AddRefreshJob(intervalHours int, job Job) error {
	if intervalHours <= 0 {
		intervalHours = 24
	}
	schedule := fmt.Sprintf("0 */%d * * *", intervalHours)
	return s.AddJob("refresh-sources", schedule, job)
}

// Start begins running scheduled jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
