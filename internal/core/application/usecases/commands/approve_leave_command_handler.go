package commands

import (
	"context"
)

// ApproveLeaveCommandHandler applies a review decision to a pending leave request.
type ApproveLeaveCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewApproveLeaveCommandHandler creates a handler for leave review decisions.
func NewApproveLeaveCommandHandler(uowFactory WorkerUoWFactory) ApproveLeaveCommandHandler {
	return ApproveLeaveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command. Only pending requests can be decided;
// the aggregate rejects repeated decisions.
func (h ApproveLeaveCommandHandler) Handle(ctx context.Context, cmd ApproveLeaveCommand) error {
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

	if cmd.Approve() {
		err = aggregate.ApproveLeave(cmd.LeaveID())
	} else {
		err = aggregate.RejectLeave(cmd.LeaveID())
	}
	if err != nil {
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
