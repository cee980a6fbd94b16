package commands

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

// DefaultGenerationHorizonDays is the forward horizon applied when a
// generation request does not specify one.
const DefaultGenerationHorizonDays = 7

var (
	ErrGenerateInstancesCommandIsNotConstructed = errors.New(
		"GenerateInstancesCommand must be created via NewGenerateInstancesCommand constructor",
	)
	ErrDaysAheadIsInvalid = errors.New("days ahead must not be negative")
)

// GenerateInstancesCommand represents a request to materialize the dated
// instances of a recurring template over a forward horizon.
type GenerateInstancesCommand struct { //nolint:recvcheck //using for validation
	templateID kernel.UUID
	daysAhead  int
	startDate  *time.Time

	guard guard.ConstructorGuard
}

// NewGenerateInstancesCommand creates a command to generate instances starting
// from the current date. A daysAhead of zero applies the default horizon.
func NewGenerateInstancesCommand(templateID kernel.UUID, daysAhead int) (GenerateInstancesCommand, error) {
	return newGenerateInstancesCommand(templateID, daysAhead, nil)
}

// NewGenerateInstancesCommandStartingAt creates a command anchored on an
// explicit start date instead of the current date. The generated occurrence
// dates all fall strictly after the start date.
func NewGenerateInstancesCommandStartingAt(
	templateID kernel.UUID,
	daysAhead int,
	startDate time.Time,
) (GenerateInstancesCommand, error) {
	return newGenerateInstancesCommand(templateID, daysAhead, &startDate)
}

func newGenerateInstancesCommand(
	templateID kernel.UUID,
	daysAhead int,
	startDate *time.Time,
) (GenerateInstancesCommand, error) {
	generateCommand := GenerateInstancesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		generateCommand.setTemplateID(templateID),
		generateCommand.setDaysAhead(daysAhead),
	); err != nil {
		return GenerateInstancesCommand{}, err
	}

	if startDate != nil {
		d := *startDate
		generateCommand.startDate = &d
	}

	return generateCommand, nil
}

// Validate ensures the command was created through a constructor.
func (c GenerateInstancesCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInstancesCommandIsNotConstructed)
}

// TemplateID returns the identifier of the recurring template.
func (c GenerateInstancesCommand) TemplateID() kernel.UUID {
	return c.templateID
}

// DaysAhead returns the forward horizon in days.
func (c GenerateInstancesCommand) DaysAhead() int {
	return c.daysAhead
}

// StartDate returns the explicit anchor date, or nil to use the current date.
func (c GenerateInstancesCommand) StartDate() *time.Time {
	if c.startDate == nil {
		return nil
	}
	d := *c.startDate
	return &d
}

func (c *GenerateInstancesCommand) setTemplateID(templateID kernel.UUID) error {
	if err := templateID.Validate(); err != nil {
		return err
	}

	c.templateID = templateID
	return nil
}

func (c *GenerateInstancesCommand) setDaysAhead(daysAhead int) error {
	if daysAhead < 0 {
		return ErrDaysAheadIsInvalid
	}
	if daysAhead == 0 {
		daysAhead = DefaultGenerationHorizonDays
	}

	c.daysAhead = daysAhead
	return nil
}
