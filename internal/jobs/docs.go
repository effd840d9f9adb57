// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the delivery side of the service.
//
// # Available Jobs
//
// 1. CourierAssignmentJob - Periodically matches unclaimed pending orders
// with active couriers, giving each courier at most one order per run
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignCouriersHandler, schedule, logger)
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
// The assignment job takes a six-field cron expression (seconds included),
// so "*/5 * * * * *" runs it every five seconds. The schedule comes from
// configuration rather than being fixed here.
//
// # Error Handling
//
// A run that finds no orders or no couriers is a successful no-op, so the
// assignment job logs every error its handler returns.
package jobs
