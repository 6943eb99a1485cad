package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	exceptionSyncJob       *ExceptionSyncJob
	statusNormalizationJob *StatusNormalizationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	syncExceptionsHandler commands.SyncExceptionsCommandHandler,
	normalizeStatusesHandler commands.NormalizeStatusesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		exceptionSyncJob:       NewExceptionSyncJob(syncExceptionsHandler, logger),
		statusNormalizationJob: NewStatusNormalizationJob(normalizeStatusesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.exceptionSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start exception sync job: %w", err)
	}

	if err := jm.statusNormalizationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.exceptionSyncJob.Stop()
		return fmt.Errorf("failed to start status normalization job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.exceptionSyncJob.Stop()
	jm.statusNormalizationJob.Stop()
}
