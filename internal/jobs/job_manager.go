package jobs

import (
	"fmt"
	"log/slog"

	"triage/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dashboardRefreshJob *DashboardRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the ranked orders query handler and snapshot store as dependencies
// to wire up the job execution.
func NewJobManager(
	rankedOrdersHandler queries.GetRankedOrdersQueryHandler,
	snapshot *queries.RankedOrdersSnapshot,
	refreshSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dashboardRefreshJob: NewDashboardRefreshJob(rankedOrdersHandler, snapshot, refreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dashboardRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dashboardRefreshJob.Stop()
}
