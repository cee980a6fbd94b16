package commands

import (
	"errors"
	"slices"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
	"fieldops/internal/pkg/guard"
)

var (
	ErrCreateWorkerCommandIsNotConstructed = errors.New(
		"CreateWorkerCommand must be created via NewCreateWorkerCommand constructor",
	)
	ErrWorkerNameIsRequired  = errors.New("worker name is required")
	ErrMaxWeeklyHoursInvalid = errors.New("max weekly hours must be greater than 0")
)

// CreateWorkerCommand represents a request to register a new worker with their
// skills, weekly availability windows, and optional weekly hours cap.
type CreateWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID       kernel.UUID
	name           string
	skills         []string
	windows        []worker.AvailabilityWindow
	maxWeeklyHours *float64

	guard guard.ConstructorGuard
}

// NewCreateWorkerCommand creates a command to register a new worker.
// Validates that the worker ID is valid, the name is not empty, and the
// weekly hours cap, when supplied, is positive.
func NewCreateWorkerCommand(
	workerID kernel.UUID,
	name string,
	skills []string,
	windows []worker.AvailabilityWindow,
	maxWeeklyHours *float64,
) (CreateWorkerCommand, error) {
	workerCommand := CreateWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		workerCommand.setWorkerID(workerID),
		workerCommand.setName(name),
		workerCommand.setMaxWeeklyHours(maxWeeklyHours),
	); err != nil {
		return CreateWorkerCommand{}, err
	}

	workerCommand.skills = slices.Clone(skills)
	workerCommand.windows = slices.Clone(windows)

	return workerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkerCommandIsNotConstructed)
}

// WorkerID returns the unique identifier for the worker.
func (c CreateWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Name returns the worker's display name.
func (c CreateWorkerCommand) Name() string {
	return c.name
}

// Skills returns the worker's initial skill identifiers.
func (c CreateWorkerCommand) Skills() []string {
	return slices.Clone(c.skills)
}

// Windows returns the worker's initial weekly availability windows.
func (c CreateWorkerCommand) Windows() []worker.AvailabilityWindow {
	return slices.Clone(c.windows)
}

// MaxWeeklyHours returns the optional weekly hours cap.
func (c CreateWorkerCommand) MaxWeeklyHours() *float64 {
	if c.maxWeeklyHours == nil {
		return nil
	}
	v := *c.maxWeeklyHours
	return &v
}

func (c *CreateWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *CreateWorkerCommand) setName(name string) error {
	if name == "" {
		return ErrWorkerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateWorkerCommand) setMaxWeeklyHours(hours *float64) error {
	if hours == nil {
		return nil
	}
	if *hours <= 0 {
		return ErrMaxWeeklyHoursInvalid
	}

	v := *hours
	c.maxWeeklyHours = &v
	return nil
}
