package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// normalizationRunTimeout caps a single repair pass; the rewrite is one
// statement, so a pass that hits this ceiling signals a store problem, not a
// big backlog.
const normalizationRunTimeout = 30 * time.Second

// StatusNormalizationJob periodically rewrites rows holding known-invalid
// status tokens to their canonical form. The orders table historically
// accumulated misspelled tokens from free-form writers; this keeps the table
// converging while any remain.
type StatusNormalizationJob struct {
	handler commands.NormalizeStatusesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusNormalizationJob creates the scheduled status repair runner.
func NewStatusNormalizationJob(
	handler commands.NormalizeStatusesCommandHandler, logger *slog.Logger,
) *StatusNormalizationJob {
	return &StatusNormalizationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "status_normalization_job"),
	}
}

// Start begins the status normalization job, running every ten minutes.
func (j *StatusNormalizationJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status normalization job started (running every ten minutes)")
	return nil
}

// runOnce executes a single repair pass under the run timeout.
func (j *StatusNormalizationJob) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), normalizationRunTimeout)
	defer cancel()

	cmd, cmdErr := commands.NewNormalizeStatusesCommand()
	if cmdErr != nil {
		j.logger.ErrorContext(ctx, "Status normalization command construction failed", "error", cmdErr)
		return
	}

	fixed, handleErr := j.handler.Handle(ctx, cmd)
	if handleErr != nil {
		j.logger.ErrorContext(ctx, "Status normalization job failed", "error", handleErr)
		return
	}

	if fixed > 0 {
		j.logger.InfoContext(ctx, "Status normalization repaired rows", "fixed", fixed)
	}
}

// Stop stops the status normalization job.
func (j *StatusNormalizationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status normalization job stopped")
}
