// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order reconciliation.
//
// # Available Jobs
//
// 1. ExceptionSyncJob - Runs every minute to merge staged exception rows into the orders table
// 2. StatusNormalizationJob - Runs every ten minutes to rewrite known-invalid status tokens
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(syncExceptionsHandler, normalizeStatusesHandler, logger)
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
// The sync job runs once a minute so staged rows never sit long; a single
// scheduled runner keeps the merge to one writer. Normalization runs every
// ten minutes since invalid tokens only appear when legacy writers are
// active.
//
// # Error Handling
//
// - Both jobs log failures and wait for the next tick rather than retrying
// - An empty sync pass produces no log output
// - Failed job starts will stop any already running jobs
package jobs
