package commands

import (
	"context"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
)

// CreateJobCommandHandler handles the business logic for job creation.
// Verifies the referenced location exists before creating the job, since a
// dangling location reference indicates a caller-side data problem.
type CreateJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateJobCommandHandler creates a handler for job creation.
// Requires a UoWFactory because the handler reads locations and writes jobs.
func NewCreateJobCommandHandler(uowFactory UoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job creation command.
// Scheduled regular jobs start in planned status; unscheduled jobs and
// recurring templates start in draft.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.LocationRepository().Get(ctx, cmd.LocationID()); err != nil {
		return err
	}

	var newJob *job.Job
	var err error
	if cmd.IsRecurring() {
		newJob, err = job.NewTemplate(cmd.JobID(), cmd.Title(), cmd.Description(),
			cmd.LocationID(), cmd.ScheduledAt(), cmd.DurationMinutes(), cmd.Pattern())
	} else {
		newJob, err = job.NewJob(cmd.JobID(), cmd.Title(), cmd.Description(),
			cmd.LocationID(), cmd.ScheduledAt(), cmd.DurationMinutes())
	}
	if err != nil {
		return err
	}

	for _, text := range cmd.Checklist() {
		if err = newJob.AddChecklistItem(kernel.NewUUID(), text); err != nil {
			return err
		}
	}

	if err = uow.JobRepository().Add(ctx, newJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
