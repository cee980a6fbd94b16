package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrApproveLeaveCommandIsNotConstructed = errors.New(
	"ApproveLeaveCommand must be created via NewApproveLeaveCommand constructor",
)

// ApproveLeaveCommand represents the review decision on a pending leave
// request. Approve moves the request to approved; otherwise it is rejected.
type ApproveLeaveCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	leaveID  kernel.UUID
	approve  bool

	guard guard.ConstructorGuard
}

// NewApproveLeaveCommand creates a command to approve or reject a leave request.
func NewApproveLeaveCommand(workerID, leaveID kernel.UUID, approve bool) (ApproveLeaveCommand, error) {
	leaveCommand := ApproveLeaveCommand{
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		leaveCommand.setWorkerID(workerID),
		leaveCommand.setLeaveID(leaveID),
	); err != nil {
		return ApproveLeaveCommand{}, err
	}

	return leaveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveLeaveCommand) Validate() error {
	return c.guard.Validate(ErrApproveLeaveCommandIsNotConstructed)
}

// WorkerID returns the identifier of the worker owning the leave request.
func (c ApproveLeaveCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// LeaveID returns the identifier of the leave request under review.
func (c ApproveLeaveCommand) LeaveID() kernel.UUID {
	return c.leaveID
}

// Approve reports whether the request should be approved rather than rejected.
func (c ApproveLeaveCommand) Approve() bool {
	return c.approve
}

func (c *ApproveLeaveCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *ApproveLeaveCommand) setLeaveID(leaveID kernel.UUID) error {
	if err := leaveID.Validate(); err != nil {
		return err
	}

	c.leaveID = leaveID
	return nil
}
