// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the ordering saga.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish pending outbox messages to Kafka
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxRepository, eventPublisher, logger)
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
// The relay job uses the cron expression "* * * * * *" which means it runs
// every second. Draining the outbox frequently keeps end-to-end saga latency
// low while the write path stays transactional.
//
// # Error Handling
//
// A failed publish stops the current batch; the affected messages stay
// pending and are retried on the next tick. Downstream consumers must
// tolerate redelivery since a crash between publish and mark-sent causes a
// duplicate.
package jobs
