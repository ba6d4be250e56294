// Package jobs provides scheduled background tasks for the coordinator.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. KeepaliveJob - Runs every 30 seconds to ping websocket viewers and drop
// dead connections from the broadcast hub.
//
// # Usage
//
//	job := jobs.NewKeepaliveJob(hub, logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start keepalive job:", err)
//	}
//	defer job.Stop()
//
// # Scheduling
//
// The keepalive job uses the cron expression "*/30 * * * * *". Thirty seconds
// keeps idle connections from being reaped by intermediaries while staying
// cheap even with many viewers.
package jobs
