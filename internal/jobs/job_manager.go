package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleLoadingJob *StaleLoadingJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	dashboard DashboardReader,
	staleSchedule string,
	staleAfter time.Duration,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		staleLoadingJob: NewStaleLoadingJob(dashboard, staleSchedule, staleAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleLoadingJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale loading job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleLoadingJob.Stop()
}
