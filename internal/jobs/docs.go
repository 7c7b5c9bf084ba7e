// Package jobs provides scheduled background tasks for the replenishment
// workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AutoCloseJob - Runs daily to close received orders whose confirmation
// deadline has elapsed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(closeDueOrdersHandler, cronSpec, logger)
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
// The auto-close job schedule comes from configuration, normally one run per
// day shortly after midnight. The sweep is idempotent: orders already closed
// by a concurrent run are skipped without error.
//
// # Error Handling
//
// - A failed sweep run is logged and retried on the next scheduled run
// - Failures on one order never stop the sweep from processing the rest
package jobs
