package commands

import (
	"context"

	"fieldops/internal/core/domain/model/worker"
)

// CreateWorkerCommandHandler handles the business logic for worker registration.
type CreateWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewCreateWorkerCommandHandler creates a handler for worker registration.
// Requires a WorkerUoWFactory for transactional persistence.
func NewCreateWorkerCommandHandler(uowFactory WorkerUoWFactory) CreateWorkerCommandHandler {
	return CreateWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the worker registration command.
// Builds the worker aggregate with its windows and optional hours cap, and
// persists it within a transaction.
func (h CreateWorkerCommandHandler) Handle(ctx context.Context, cmd CreateWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newWorker, err := worker.NewWorker(cmd.WorkerID(), cmd.Name(), cmd.Skills())
	if err != nil {
		return err
	}

	for _, window := range cmd.Windows() {
		newWorker.AddAvailabilityWindow(window)
	}

	if cap := cmd.MaxWeeklyHours(); cap != nil {
		if err = newWorker.SetMaxWeeklyHours(*cap); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkerRepository().Add(ctx, newWorker); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
