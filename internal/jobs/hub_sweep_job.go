package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// HubSweepJob periodically evicts tracking subscriptions that have stopped
// draining their event channels. A subscription is considered stalled once
// its dropped streak reaches the configured threshold.
type HubSweepJob struct {
	hub              *services.TrackingHub
	schedule         string
	maxDroppedStreak int64
	cron             *cron.Cron
	logger           *slog.Logger
}

// NewHubSweepJob creates a sweep job for the given hub. The schedule is a
// six field cron expression with a seconds column.
func NewHubSweepJob(
	hub *services.TrackingHub,
	schedule string,
	maxDroppedStreak int64,
	logger *slog.Logger,
) *HubSweepJob {
	return &HubSweepJob{
		hub:              hub,
		schedule:         schedule,
		maxDroppedStreak: maxDroppedStreak,
		cron:             cron.New(cron.WithSeconds()),
		logger:           logger.With("component", "hub_sweep_job"),
	}
}

// Start schedules the sweep on the configured cadence.
func (j *HubSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		removed := j.hub.Sweep(j.maxDroppedStreak)
		if removed > 0 {
			j.logger.Info("swept stalled tracking subscriptions",
				"removed", removed,
				"remaining", j.hub.TotalSubscribers(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Hub sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *HubSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Hub sweep job stopped")
}
