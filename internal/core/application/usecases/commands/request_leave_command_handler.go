package commands

import (
	"context"
)

// RequestLeaveCommandHandler records a new pending leave request on a worker.
type RequestLeaveCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewRequestLeaveCommandHandler creates a handler for leave requests.
func NewRequestLeaveCommandHandler(uowFactory WorkerUoWFactory) RequestLeaveCommandHandler {
	return RequestLeaveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the leave request command.
// Loads the worker, records the pending leave, and persists the aggregate.
// An unknown worker ID surfaces as errs.ErrObjectNotFound from the repository.
func (h RequestLeaveCommandHandler) Handle(ctx context.Context, cmd RequestLeaveCommand) error {
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

	workerRepo := uow.WorkerRepository()

	aggregate, err := workerRepo.Get(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}

	if _, err = aggregate.RequestLeave(cmd.LeaveID(), cmd.StartDate(), cmd.EndDate()); err != nil {
		return err
	}

	if err = workerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
