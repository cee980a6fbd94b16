// Package queries contains read-only operations in the CQRS architecture.
// Most handlers read directly from the database with raw SQL for performance;
// the assignment validation query is the exception, going through the ports
// repositories because it feeds fully hydrated aggregates into domain logic.
package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/guard"
)

var (
	ErrValidateAssignmentQueryIsNotConstructed = errors.New(
		"ValidateAssignmentQuery must be created via NewValidateAssignmentQuery constructor",
	)
	ErrProposedTimeIsRequired = errors.New("proposed time is required")
)

// ValidateAssignmentQuery represents a proposed worker-to-job assignment to be
// checked for conflicts. Duration zero means "use the job's own estimate".
type ValidateAssignmentQuery struct { //nolint:recvcheck //using for validation
	workerID        kernel.UUID
	jobID           kernel.UUID
	locationID      kernel.UUID
	proposedAt      time.Time
	durationMinutes int
	weekStart       *time.Time
	weekEnd         *time.Time

	guard guard.ConstructorGuard
}

// NewValidateAssignmentQuery creates a query to validate a proposed assignment.
func NewValidateAssignmentQuery(
	workerID kernel.UUID,
	jobID kernel.UUID,
	locationID kernel.UUID,
	proposedAt time.Time,
	durationMinutes int,
	weekStart *time.Time,
	weekEnd *time.Time,
) (ValidateAssignmentQuery, error) {
	query := ValidateAssignmentQuery{
		durationMinutes: durationMinutes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setWorkerID(workerID),
		query.setJobID(jobID),
		query.setLocationID(locationID),
		query.setProposedAt(proposedAt),
	); err != nil {
		return ValidateAssignmentQuery{}, err
	}

	if weekStart != nil {
		t := *weekStart
		query.weekStart = &t
	}
	if weekEnd != nil {
		t := *weekEnd
		query.weekEnd = &t
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ValidateAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrValidateAssignmentQueryIsNotConstructed)
}

// WorkerID returns the identifier of the worker under consideration.
func (q ValidateAssignmentQuery) WorkerID() kernel.UUID {
	return q.workerID
}

// JobID returns the identifier of the job being validated.
func (q ValidateAssignmentQuery) JobID() kernel.UUID {
	return q.jobID
}

// LocationID returns the identifier of the job's location.
func (q ValidateAssignmentQuery) LocationID() kernel.UUID {
	return q.locationID
}

// ProposedAt returns the proposed start timestamp.
func (q ValidateAssignmentQuery) ProposedAt() time.Time {
	return q.proposedAt
}

// DurationMinutes returns the proposed duration; zero defers to the job.
func (q ValidateAssignmentQuery) DurationMinutes() int {
	return q.durationMinutes
}

// WeekStart returns the optional explicit week start for workload checks.
func (q ValidateAssignmentQuery) WeekStart() *time.Time {
	if q.weekStart == nil {
		return nil
	}
	t := *q.weekStart
	return &t
}

// WeekEnd returns the optional explicit week end for workload checks.
func (q ValidateAssignmentQuery) WeekEnd() *time.Time {
	if q.weekEnd == nil {
		return nil
	}
	t := *q.weekEnd
	return &t
}

func (q *ValidateAssignmentQuery) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	q.workerID = workerID
	return nil
}

func (q *ValidateAssignmentQuery) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	q.jobID = jobID
	return nil
}

func (q *ValidateAssignmentQuery) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	q.locationID = locationID
	return nil
}

func (q *ValidateAssignmentQuery) setProposedAt(proposedAt time.Time) error {
	if proposedAt.IsZero() {
		return ErrProposedTimeIsRequired
	}

	q.proposedAt = proposedAt
	return nil
}

// ValidateAssignmentResponse carries the outcome of assignment validation.
// Valid and CanAssign are always true; warnings never block.
type ValidateAssignmentResponse struct {
	Valid     bool
	CanAssign bool
	Warnings  []services.Warning
}
