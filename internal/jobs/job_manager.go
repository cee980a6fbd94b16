package jobs

import (
	"fmt"
	"log/slog"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	recurringGenerationJob *RecurringGenerationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query and command handlers as dependencies to wire up the job execution.
func NewJobManager(
	templatesHandler queries.GetRecurringTemplatesQueryHandler,
	generateHandler commands.GenerateInstancesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		recurringGenerationJob: NewRecurringGenerationJob(templatesHandler, generateHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.recurringGenerationJob.Start(); err != nil {
		return fmt.Errorf("failed to start recurring generation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.recurringGenerationJob.Stop()
}
