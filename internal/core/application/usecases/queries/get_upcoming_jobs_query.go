package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var (
	ErrGetUpcomingJobsQueryIsNotConstructed = errors.New(
		"GetUpcomingJobsQuery must be created via NewGetUpcomingJobsQuery constructor",
	)
	ErrFromTimeIsRequired = errors.New("from time is required")
)

// GetUpcomingJobsQuery retrieves scheduled jobs starting at or after a given
// time. Only active-status non-template jobs appear in the schedule.
type GetUpcomingJobsQuery struct { //nolint:recvcheck //using for validation
	from time.Time

	guard guard.ConstructorGuard
}

// NewGetUpcomingJobsQuery creates a query for jobs scheduled from the given time.
func NewGetUpcomingJobsQuery(from time.Time) (GetUpcomingJobsQuery, error) {
	query := GetUpcomingJobsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setFrom(from); err != nil {
		return GetUpcomingJobsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUpcomingJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetUpcomingJobsQueryIsNotConstructed)
}

// From returns the lower bound on the scheduled start time.
func (q GetUpcomingJobsQuery) From() time.Time {
	return q.from
}

func (q *GetUpcomingJobsQuery) setFrom(from time.Time) error {
	if from.IsZero() {
		return ErrFromTimeIsRequired
	}

	q.from = from
	return nil
}

// GetUpcomingJobsQueryResponse is the job read model for schedule views.
type GetUpcomingJobsQueryResponse struct {
	ID              kernel.UUID
	Title           string
	LocationID      kernel.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	Status          string
}
