package commands

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrJobTitleIsRequired   = errors.New("job title is required")
	ErrJobDurationIsInvalid = errors.New("job duration must not be negative")
)

// CreateJobCommand represents a request to create a job at a location: either
// a regular one-off job or a recurring template with a repetition pattern.
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID           kernel.UUID
	title           string
	description     string
	locationID      kernel.UUID
	scheduledAt     *time.Time
	durationMinutes int
	isRecurring     bool
	pattern         job.Pattern
	checklist       []string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to create a regular job.
func NewCreateJobCommand(
	jobID kernel.UUID,
	title string,
	description string,
	locationID kernel.UUID,
	scheduledAt *time.Time,
	durationMinutes int,
	checklist []string,
) (CreateJobCommand, error) {
	return newCreateJobCommand(jobID, title, description, locationID,
		scheduledAt, durationMinutes, false, job.PatternNone, checklist)
}

// NewCreateTemplateCommand creates a command to create a recurring job template.
func NewCreateTemplateCommand(
	jobID kernel.UUID,
	title string,
	description string,
	locationID kernel.UUID,
	scheduledAt *time.Time,
	durationMinutes int,
	pattern job.Pattern,
	checklist []string,
) (CreateJobCommand, error) {
	if err := pattern.Validate(); err != nil {
		return CreateJobCommand{}, err
	}
	return newCreateJobCommand(jobID, title, description, locationID,
		scheduledAt, durationMinutes, true, pattern, checklist)
}

func newCreateJobCommand(
	jobID kernel.UUID,
	title string,
	description string,
	locationID kernel.UUID,
	scheduledAt *time.Time,
	durationMinutes int,
	isRecurring bool,
	pattern job.Pattern,
	checklist []string,
) (CreateJobCommand, error) {
	jobCommand := CreateJobCommand{
		isRecurring: isRecurring,
		pattern:     pattern,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobCommand.setJobID(jobID),
		jobCommand.setTitle(title),
		jobCommand.setLocationID(locationID),
		jobCommand.setDuration(durationMinutes),
	); err != nil {
		return CreateJobCommand{}, err
	}

	jobCommand.description = description
	jobCommand.checklist = append([]string(nil), checklist...)

	if scheduledAt != nil {
		t := *scheduledAt
		jobCommand.scheduledAt = &t
	}

	return jobCommand, nil
}

// Validate ensures the command was created through a constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the unique identifier for the job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Title returns the job title.
func (c CreateJobCommand) Title() string {
	return c.title
}

// Description returns the job description.
func (c CreateJobCommand) Description() string {
	return c.description
}

// LocationID returns the identifier of the location where the work happens.
func (c CreateJobCommand) LocationID() kernel.UUID {
	return c.locationID
}

// ScheduledAt returns the optional scheduled start timestamp.
func (c CreateJobCommand) ScheduledAt() *time.Time {
	if c.scheduledAt == nil {
		return nil
	}
	t := *c.scheduledAt
	return &t
}

// DurationMinutes returns the estimated duration; zero means unset.
func (c CreateJobCommand) DurationMinutes() int {
	return c.durationMinutes
}

// IsRecurring reports whether the command creates a recurring template.
func (c CreateJobCommand) IsRecurring() bool {
	return c.isRecurring
}

// Pattern returns the repetition pattern for template commands.
func (c CreateJobCommand) Pattern() job.Pattern {
	return c.pattern
}

// Checklist returns the initial checklist item texts in order.
func (c CreateJobCommand) Checklist() []string {
	return append([]string(nil), c.checklist...)
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setTitle(title string) error {
	if title == "" {
		return ErrJobTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateJobCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *CreateJobCommand) setDuration(durationMinutes int) error {
	if durationMinutes < 0 {
		return ErrJobDurationIsInvalid
	}

	c.durationMinutes = durationMinutes
	return nil
}
