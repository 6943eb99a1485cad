package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// syncRunTimeout caps a single merge pass. A pass that cannot finish within
// this window aborts and rolls back; the next scheduled run retries the
// remaining rows.
const syncRunTimeout = 30 * time.Second

// ExceptionSyncJob periodically merges staged exception rows into the orders
// table. A single scheduled runner keeps the merge critical section to one
// writer; the on-demand HTTP trigger reuses the same handler.
type ExceptionSyncJob struct {
	handler commands.SyncExceptionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExceptionSyncJob creates the scheduled exception merge runner.
func NewExceptionSyncJob(handler commands.SyncExceptionsCommandHandler, logger *slog.Logger) *ExceptionSyncJob {
	return &ExceptionSyncJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "exception_sync_job"),
	}
}

// Start begins the exception sync job, running once a minute.
func (j *ExceptionSyncJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Exception sync job started (running every minute)")
	return nil
}

// runOnce executes a single merge pass under the run timeout.
func (j *ExceptionSyncJob) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), syncRunTimeout)
	defer cancel()

	cmd, cmdErr := commands.NewSyncExceptionsCommand()
	if cmdErr != nil {
		j.logger.ErrorContext(ctx, "Exception sync command construction failed", "error", cmdErr)
		return
	}

	result, handleErr := j.handler.Handle(ctx, cmd)
	if handleErr != nil {
		j.logger.ErrorContext(ctx, "Exception sync job failed", "error", handleErr)
		return
	}

	if result.Processed > 0 {
		j.logger.InfoContext(ctx, "Exception sync completed",
			"processed", result.Processed,
			"merged", result.Merged,
			"skipped", result.Skipped,
		)
	}
}

// Stop stops the exception sync job.
func (j *ExceptionSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Exception sync job stopped")
}
