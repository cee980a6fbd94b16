package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrAssignWorkerCommandIsNotConstructed = errors.New(
	"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
)

// AssignWorkerCommand represents a request to commit a worker to a job.
// Assignment is intentionally not gated on validation warnings: schedulers see
// conflicts through the validate-assignment query and may override them.
type AssignWorkerCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWorkerCommand creates a command to assign a worker to a job.
func NewAssignWorkerCommand(jobID, workerID kernel.UUID) (AssignWorkerCommand, error) {
	assignCommand := AssignWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setJobID(jobID),
		assignCommand.setWorkerID(workerID),
	); err != nil {
		return AssignWorkerCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

// JobID returns the identifier of the job receiving the assignment.
func (c AssignWorkerCommand) JobID() kernel.UUID {
	return c.jobID
}

// WorkerID returns the identifier of the worker being assigned.
func (c AssignWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *AssignWorkerCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AssignWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}
