package jobs

import (
	"context"
	"log/slog"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RecurringGenerationJob manages the scheduled expansion of recurring templates
// into dated job instances. Runs hourly so newly created templates materialize
// within the generation horizon without manual intervention.
type RecurringGenerationJob struct {
	templatesHandler queries.GetRecurringTemplatesQueryHandler
	generateHandler  commands.GenerateInstancesCommandHandler
	cron             *cron.Cron
	logger           *slog.Logger
}

// NewRecurringGenerationJob creates a new job for generating recurring instances.
// Uses GenerateInstancesCommandHandler to expand every known template hourly.
func NewRecurringGenerationJob(
	templatesHandler queries.GetRecurringTemplatesQueryHandler,
	generateHandler commands.GenerateInstancesCommandHandler,
	logger *slog.Logger,
) *RecurringGenerationJob {
	return &RecurringGenerationJob{
		templatesHandler: templatesHandler,
		generateHandler:  generateHandler,
		cron:             cron.New(),
		logger:           logger.With("component", "recurring_generation_job"),
	}
}

// Start begins the recurring generation job to run every hour.
func (j *RecurringGenerationJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Recurring generation job started (running hourly)")
	return nil
}

// Stop stops the recurring generation job.
func (j *RecurringGenerationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Recurring generation job stopped")
}

func (j *RecurringGenerationJob) run() {
	ctx := context.Background()

	templates, err := j.templatesHandler.Handle(ctx, queries.NewGetRecurringTemplatesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list recurring templates", "error", err)
		return
	}

	for _, template := range templates {
		cmd, cmdErr := commands.NewGenerateInstancesCommand(template.ID, 0)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build generation command",
				"templateID", template.ID.String(), "error", cmdErr)
			continue
		}

		result, genErr := j.generateHandler.Handle(ctx, cmd)
		if genErr != nil {
			j.logger.ErrorContext(ctx, "Instance generation failed",
				"templateID", template.ID.String(), "error", genErr)
			continue
		}

		if result.CreatedCount > 0 || len(result.Failures) > 0 {
			j.logger.InfoContext(ctx, "Generated recurring instances",
				"templateID", template.ID.String(),
				"created", result.CreatedCount,
				"failed", len(result.Failures))
		}
	}
}
