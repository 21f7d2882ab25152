// Package jobs provides scheduled background tasks for the shop backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the order lifecycle needs.
//
// # Available Jobs
//
// 1. ShipmentProgressJob - Records synthetic transit checkpoints for every
// shipped order, standing in for a real carrier feed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(advanceShipmentsHandler, spec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cron spec carries a seconds field, so "0 0 * * * *" runs hourly.
// The spec comes from configuration; tune it to how often checkpoints
// should appear on the trail.
package jobs
