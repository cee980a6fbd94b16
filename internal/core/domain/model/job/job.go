package job

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created
	// through the NewJob, NewTemplate, or RestoreJob factory functions.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

	// ErrNotATemplate is returned when instance generation is attempted on a job
	// that is not a recurring template.
	ErrNotATemplate = errors.New("job is not a recurring template")

	// ErrChecklistItemNotFound is returned when a checklist operation references
	// an item the job does not own.
	ErrChecklistItemNotFound = errors.New("checklist item not found on job")
)

// Job is the aggregate root for a unit of work at a customer location.
//
// Job maintains these invariants:
//   - Must have a valid unique identifier, non-empty title, and valid location ID
//   - Estimated duration is non-negative; zero means "unset" and validation
//     applies the configured default
//   - Status transitions follow the workflow state machine
//   - Recurring templates carry a valid pattern and never a parent template
//   - Instances carry both a parent template ID and an occurrence date, and are
//     never themselves recurring
//
// The struct uses private fields to ensure encapsulation and can only be created
// through its factory functions.
type Job struct {
	id               kernel.UUID
	title            string
	description      string
	locationID       kernel.UUID
	scheduledAt      *time.Time
	durationMinutes  int
	status           Status
	assigneeIDs      []kernel.UUID
	isRecurring      bool
	pattern          Pattern
	parentTemplateID *kernel.UUID
	occurrenceDate   *time.Time
	checklist        []ChecklistItem

	isConstructed bool
}

// NewJob creates a regular (non-recurring) job. A job created with a schedule
// starts in Planned status; an unscheduled job starts in Draft.
func NewJob(
	id kernel.UUID,
	title string,
	description string,
	locationID kernel.UUID,
	scheduledAt *time.Time,
	durationMinutes int,
) (*Job, error) {
	j := &Job{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setTitle(title),
		j.setLocationID(locationID),
		j.setDuration(durationMinutes),
	); err != nil {
		return nil, err
	}

	j.description = description

	if scheduledAt != nil {
		if err := j.Schedule(*scheduledAt); err != nil {
			return nil, err
		}
	}

	return j, nil
}

// NewTemplate creates a recurring job template with the given pattern.
// Templates always stay in Draft status so they never enter the active subset
// considered by overlap and workload validation; only their generated instances
// move through the workflow.
func NewTemplate(
	id kernel.UUID,
	title string,
	description string,
	locationID kernel.UUID,
	scheduledAt *time.Time,
	durationMinutes int,
	pattern Pattern,
) (*Job, error) {
	if err := pattern.Validate(); err != nil {
		return nil, err
	}

	j := &Job{
		status:        Draft,
		isRecurring:   true,
		pattern:       pattern,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setTitle(title),
		j.setLocationID(locationID),
		j.setDuration(durationMinutes),
	); err != nil {
		return nil, err
	}

	j.description = description

	if scheduledAt != nil {
		t := *scheduledAt
		j.scheduledAt = &t
	}

	return j, nil
}

// RestoreJob reconstructs a job aggregate from persistence.
func RestoreJob(
	id kernel.UUID,
	title string,
	description string,
	locationID kernel.UUID,
	scheduledAt *time.Time,
	durationMinutes int,
	status Status,
	assigneeIDs []kernel.UUID,
	isRecurring bool,
	pattern Pattern,
	parentTemplateID *kernel.UUID,
	occurrenceDate *time.Time,
	checklist []ChecklistItem,
) (*Job, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if isRecurring {
		if err := pattern.Validate(); err != nil {
			return nil, err
		}
	}

	j := &Job{
		status:        status,
		isRecurring:   isRecurring,
		pattern:       pattern,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setTitle(title),
		j.setLocationID(locationID),
		j.setDuration(durationMinutes),
	); err != nil {
		return nil, err
	}

	j.description = description
	j.assigneeIDs = slices.Clone(assigneeIDs)
	j.checklist = slices.Clone(checklist)

	if scheduledAt != nil {
		t := *scheduledAt
		j.scheduledAt = &t
	}
	if parentTemplateID != nil {
		p := *parentTemplateID
		j.parentTemplateID = &p
	}
	if occurrenceDate != nil {
		d := dateOnly(*occurrenceDate)
		j.occurrenceDate = &d
	}

	return j, nil
}

// Validate ensures the Job was created through a factory function.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// Title returns the job title.
func (j *Job) Title() string {
	return j.title
}

// Description returns the job description.
func (j *Job) Description() string {
	return j.description
}

// LocationID returns the identifier of the location where the work happens.
func (j *Job) LocationID() kernel.UUID {
	return j.locationID
}

// ScheduledAt returns the scheduled start timestamp, or nil when unscheduled.
func (j *Job) ScheduledAt() *time.Time {
	if j.scheduledAt == nil {
		return nil
	}
	t := *j.scheduledAt
	return &t
}

// DurationMinutes returns the estimated duration in minutes.
// Zero means unset; validation applies its configured default.
func (j *Job) DurationMinutes() int {
	return j.durationMinutes
}

// Status returns the current workflow status.
func (j *Job) Status() Status {
	return j.status
}

// Assignees returns the identifiers of workers assigned to the job, in
// assignment order.
func (j *Job) Assignees() []kernel.UUID {
	return slices.Clone(j.assigneeIDs)
}

// IsAssignedTo reports whether the given worker is assigned to the job.
func (j *Job) IsAssignedTo(workerID kernel.UUID) bool {
	for _, id := range j.assigneeIDs {
		if id.IsEqual(workerID) {
			return true
		}
	}
	return false
}

// IsRecurring reports whether the job is a recurring template.
func (j *Job) IsRecurring() bool {
	return j.isRecurring
}

// Pattern returns the repetition pattern; PatternNone for non-recurring jobs.
func (j *Job) Pattern() Pattern {
	return j.pattern
}

// IsTemplate reports whether the job can generate instances: it is recurring
// and is not itself a generated instance.
func (j *Job) IsTemplate() bool {
	return j.isRecurring && j.parentTemplateID == nil
}

// ParentTemplateID returns the template this instance was generated from, or
// nil for regular jobs and templates.
func (j *Job) ParentTemplateID() *kernel.UUID {
	if j.parentTemplateID == nil {
		return nil
	}
	p := *j.parentTemplateID
	return &p
}

// OccurrenceDate returns the occurrence date of a generated instance, or nil.
func (j *Job) OccurrenceDate() *time.Time {
	if j.occurrenceDate == nil {
		return nil
	}
	d := *j.occurrenceDate
	return &d
}

// Checklist returns the job's checklist items in position order.
func (j *Job) Checklist() []ChecklistItem {
	items := slices.Clone(j.checklist)
	slices.SortStableFunc(items, func(a, b ChecklistItem) int {
		return a.Position() - b.Position()
	})
	return items
}

// AddChecklistItem appends a checklist item after the current last position.
func (j *Job) AddChecklistItem(id kernel.UUID, text string) error {
	item, err := NewChecklistItem(id, len(j.checklist), text)
	if err != nil {
		return err
	}
	j.checklist = append(j.checklist, item)
	return nil
}

// CompleteChecklistItem marks the checklist item with the given identifier done.
func (j *Job) CompleteChecklistItem(itemID kernel.UUID) error {
	for i, item := range j.checklist {
		if item.ID().IsEqual(itemID) {
			j.checklist[i] = item.complete()
			return nil
		}
	}
	return ErrChecklistItemNotFound
}

// Schedule sets the scheduled start timestamp. Scheduling a draft non-recurring
// job moves it to Planned; templates keep their Draft status.
func (j *Job) Schedule(at time.Time) error {
	t := at
	j.scheduledAt = &t

	if !j.isRecurring && j.status == Draft {
		newStatus, err := j.status.Plan()
		if err != nil {
			return err
		}
		j.status = newStatus
	}
	return nil
}

// Assign adds a worker to the job.
//
// For regular jobs this enforces the Planned -> Assigned transition
// (reassignment while Assigned is allowed). For templates the assignment list
// is simply extended; templates do not change status, their assignments are
// copied onto generated instances.
func (j *Job) Assign(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	if !j.isRecurring {
		newStatus, err := j.status.Assign()
		if err != nil {
			return err
		}
		j.status = newStatus
	}

	if !j.IsAssignedTo(workerID) {
		j.assigneeIDs = append(j.assigneeIDs, workerID)
	}
	return nil
}

// Start marks work at the location as begun.
func (j *Job) Start() error {
	newStatus, err := j.status.Start()
	if err != nil {
		return err
	}
	j.status = newStatus
	return nil
}

// Submit marks the work as finished and awaiting review.
func (j *Job) Submit() error {
	newStatus, err := j.status.Submit()
	if err != nil {
		return err
	}
	j.status = newStatus
	return nil
}

// Approve marks submitted work as accepted.
func (j *Job) Approve() error {
	newStatus, err := j.status.Approve()
	if err != nil {
		return err
	}
	j.status = newStatus
	return nil
}

// Reject marks submitted work as declined.
func (j *Job) Reject() error {
	newStatus, err := j.status.Reject()
	if err != nil {
		return err
	}
	j.status = newStatus
	return nil
}

// Archive moves a reviewed job to its terminal state.
func (j *Job) Archive() error {
	newStatus, err := j.status.Archive()
	if err != nil {
		return err
	}
	j.status = newStatus
	return nil
}

// NewInstance generates a concrete dated instance of a recurring template.
//
// The instance copies the template's title, description, location, duration,
// and worker assignments, and receives a fresh copy of every checklist item in
// position order (new item identifiers, not-done state). The instance starts in
// Draft status, is never recurring, and records both the parent template ID and
// the occurrence date. Its scheduled timestamp combines the occurrence date
// with the template's time-of-day (midnight when the template is unscheduled).
//
// Returns ErrNotATemplate when called on a regular job or a generated instance.
func (j *Job) NewInstance(instanceID kernel.UUID, occurrence time.Time) (*Job, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	if !j.IsTemplate() {
		return nil, ErrNotATemplate
	}

	date := dateOnly(occurrence)
	scheduled := date
	if j.scheduledAt != nil {
		tod := kernel.TimeOfDayFromTime(*j.scheduledAt)
		scheduled = date.Add(time.Duration(tod.Minutes()) * time.Minute)
	}

	instance := &Job{
		title:            j.title,
		description:      j.description,
		locationID:       j.locationID,
		scheduledAt:      &scheduled,
		durationMinutes:  j.durationMinutes,
		status:           Draft,
		assigneeIDs:      slices.Clone(j.assigneeIDs),
		parentTemplateID: &j.id,
		occurrenceDate:   &date,
		isConstructed:    true,
	}

	if err := instance.setID(instanceID); err != nil {
		return nil, err
	}

	for _, item := range j.Checklist() {
		if err := instance.AddChecklistItem(kernel.NewUUID(), item.Text()); err != nil {
			return nil, err
		}
	}

	return instance, nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	j.title = title
	return nil
}

func (j *Job) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location ID", err)
	}
	j.locationID = locationID
	return nil
}

func (j *Job) setDuration(durationMinutes int) error {
	if durationMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("duration",
			fmt.Errorf("%d minutes is negative", durationMinutes))
	}
	j.durationMinutes = durationMinutes
	return nil
}
