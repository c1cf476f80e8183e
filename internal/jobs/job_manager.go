package jobs

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/services"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	hubSweepJob *HubSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	hub *services.TrackingHub,
	sweepSchedule string,
	maxDroppedStreak int64,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		hubSweepJob: NewHubSweepJob(hub, sweepSchedule, maxDroppedStreak, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.hubSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start hub sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.hubSweepJob.Stop()
}
