// Package jobs provides scheduled background tasks for the triage system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. DashboardRefreshJob - Recomputes the ranked dashboard snapshot on a
// configured schedule so the dashboard endpoint never rescores per request.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(rankedOrdersHandler, snapshot, refreshSchedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh schedule is a six-field cron expression with seconds, taken
// from configuration. Scores change with the passage of time (delivery
// windows tighten), so the snapshot is recomputed on schedule rather than
// per clock tick.
//
// # Error Handling
//
// A failed refresh keeps the previous snapshot; the dashboard serves stale
// data rather than an error until the next successful run.
package jobs
