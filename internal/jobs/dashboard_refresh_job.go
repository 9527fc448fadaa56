package jobs

import (
	"context"
	"log/slog"

	"triage/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DashboardRefreshJob recomputes the ranked dashboard snapshot on a
// configured schedule. The dashboard endpoint serves whatever this job last
// published; a failed refresh leaves the previous snapshot in place.
type DashboardRefreshJob struct {
	handler  queries.GetRankedOrdersQueryHandler
	snapshot *queries.RankedOrdersSnapshot
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDashboardRefreshJob creates a job that refreshes the snapshot on the
// given six-field cron schedule.
func NewDashboardRefreshJob(
	handler queries.GetRankedOrdersQueryHandler,
	snapshot *queries.RankedOrdersSnapshot,
	schedule string,
	logger *slog.Logger,
) *DashboardRefreshJob {
	return &DashboardRefreshJob{
		handler:  handler,
		snapshot: snapshot,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dashboard_refresh_job"),
	}
}

// Start performs an initial refresh and begins the scheduled runs.
func (j *DashboardRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.refresh)
	if err != nil {
		return err
	}

	// First refresh runs inline so the dashboard is populated right after
	// startup instead of waiting for the first tick.
	j.refresh()

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the dashboard refresh job.
func (j *DashboardRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dashboard refresh job stopped")
}

func (j *DashboardRefreshJob) refresh() {
	ctx := context.Background()
	query := queries.NewGetRankedOrdersQuery()

	response, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dashboard refresh failed", "error", err)
		return
	}

	j.snapshot.Set(response)
	j.logger.InfoContext(ctx, "Dashboard snapshot refreshed",
		"totalOrders", response.TotalOrders,
		"generatedAt", response.GeneratedAt,
	)
}
