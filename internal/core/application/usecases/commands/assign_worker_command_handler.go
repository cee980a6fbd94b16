package commands

import (
	"context"
)

// AssignWorkerCommandHandler commits a worker to a job.
// Both referents must exist; the job aggregate enforces the planned-to-assigned
// transition (templates merely record the assignee for future instances).
type AssignWorkerCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignWorkerCommandHandler creates a handler for worker assignment.
// Requires a UoWFactory because the handler reads workers and writes jobs.
func NewAssignWorkerCommandHandler(uowFactory UoWFactory) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h AssignWorkerCommandHandler) Handle(ctx context.Context, cmd AssignWorkerCommand) error {
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

	jobRepo := uow.JobRepository()

	aggregate, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	assignee, err := uow.WorkerRepository().Get(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}

	if err = aggregate.Assign(assignee.ID()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
