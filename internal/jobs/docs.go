// Package jobs provides scheduled background tasks for the delivery backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. AutoAssignmentJob - Runs the assignment rules on a configurable schedule
// to assign the unassigned backlog to drivers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(runRulesHandler, schedule, logger)
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
// The auto-assignment job accepts a six-field cron expression (seconds
// included) and defaults to "0 * * * * *", once a minute. Every run records
// an AssignmentBatch so the audit log also covers scheduled runs.
//
// # Error Handling
//
// - Run failures are logged and the next scheduled run proceeds normally
// - Failed job starts will stop any already running jobs
package jobs
