// Package jobs provides scheduled background tasks for the order tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. OrderStatsJob - Runs every minute and logs order counts per lifecycle status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(orderStatsHandler, logger)
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
// The stats job uses the cron expression "0 * * * * *", firing at the top of
// every minute. The counts come straight from the orders table, so a report
// reflects committed state at the moment it runs.
//
// # Error Handling
//
// A failed stats read is logged and skipped; the next tick retries.
// Failed job starts will stop any already running jobs.
package jobs
