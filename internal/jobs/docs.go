// Package jobs provides scheduled background tasks for the scheduling system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the workforce scheduler.
//
// # Available Jobs
//
// 1. RecurringGenerationJob - Runs hourly to expand recurring job templates into dated instances
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(templatesHandler, generateHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The generation job uses the "@hourly" cron expression. Generation is
// idempotent: occurrences that already have an instance are skipped, and the
// unique (template, occurrence date) index resolves concurrent runs.
//
// # Error Handling
//
// Failures for individual templates or occurrence dates are logged and do not
// abort the rest of the run.
package jobs
