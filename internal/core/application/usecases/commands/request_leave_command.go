package commands

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var (
	ErrRequestLeaveCommandIsNotConstructed = errors.New(
		"RequestLeaveCommand must be created via NewRequestLeaveCommand constructor",
	)
	ErrLeaveRangeInvalid = errors.New("leave end date must not be before start date")
)

// RequestLeaveCommand represents a worker asking not to be scheduled during an
// inclusive date range. The request starts pending and only affects validation
// once approved.
type RequestLeaveCommand struct { //nolint:recvcheck //using for validation
	workerID  kernel.UUID
	leaveID   kernel.UUID
	startDate time.Time
	endDate   time.Time

	guard guard.ConstructorGuard
}

// NewRequestLeaveCommand creates a command to record a leave request.
func NewRequestLeaveCommand(workerID, leaveID kernel.UUID, startDate, endDate time.Time) (RequestLeaveCommand, error) {
	leaveCommand := RequestLeaveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		leaveCommand.setWorkerID(workerID),
		leaveCommand.setLeaveID(leaveID),
		leaveCommand.setRange(startDate, endDate),
	); err != nil {
		return RequestLeaveCommand{}, err
	}

	return leaveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestLeaveCommand) Validate() error {
	return c.guard.Validate(ErrRequestLeaveCommandIsNotConstructed)
}

// WorkerID returns the identifier of the worker requesting leave.
func (c RequestLeaveCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// LeaveID returns the identifier for the new leave request.
func (c RequestLeaveCommand) LeaveID() kernel.UUID {
	return c.leaveID
}

// StartDate returns the first day of leave (inclusive).
func (c RequestLeaveCommand) StartDate() time.Time {
	return c.startDate
}

// EndDate returns the last day of leave (inclusive).
func (c RequestLeaveCommand) EndDate() time.Time {
	return c.endDate
}

func (c *RequestLeaveCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *RequestLeaveCommand) setLeaveID(leaveID kernel.UUID) error {
	if err := leaveID.Validate(); err != nil {
		return err
	}

	c.leaveID = leaveID
	return nil
}

func (c *RequestLeaveCommand) setRange(startDate, endDate time.Time) error {
	if endDate.Before(startDate) {
		return ErrLeaveRangeInvalid
	}

	c.startDate = startDate
	c.endDate = endDate
	return nil
}
