package commands

import (
	"errors"
	"slices"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/location"
	"fieldops/internal/pkg/guard"
)

var (
	ErrCreateLocationCommandIsNotConstructed = errors.New(
		"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
	)
	ErrLocationNameIsRequired = errors.New("location name is required")
)

// CreateLocationCommand represents a request to register a new customer site
// together with its declared skill requirements.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	locationID   kernel.UUID
	name         string
	address      string
	requirements []location.SkillRequirement

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand creates a command to register a new location.
func NewCreateLocationCommand(
	locationID kernel.UUID,
	name string,
	address string,
	requirements []location.SkillRequirement,
) (CreateLocationCommand, error) {
	locationCommand := CreateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setLocationID(locationID),
		locationCommand.setName(name),
	); err != nil {
		return CreateLocationCommand{}, err
	}

	locationCommand.address = address
	locationCommand.requirements = slices.Clone(requirements)

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

// LocationID returns the unique identifier for the location.
func (c CreateLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Name returns the location name.
func (c CreateLocationCommand) Name() string {
	return c.name
}

// Address returns the location address.
func (c CreateLocationCommand) Address() string {
	return c.address
}

// Requirements returns the declared skill requirements.
func (c CreateLocationCommand) Requirements() []location.SkillRequirement {
	return slices.Clone(c.requirements)
}

func (c *CreateLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *CreateLocationCommand) setName(name string) error {
	if name == "" {
		return ErrLocationNameIsRequired
	}

	c.name = name
	return nil
}
