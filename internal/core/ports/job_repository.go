package ports

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates,
// covering regular jobs, recurring templates, and generated instances.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// Inserting a generated instance for a (template, occurrence date) pair
	// that already exists fails with errs.ErrObjectAlreadyExists; the unique
	// constraint lives at the storage layer so concurrent generation cannot
	// produce duplicates.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetActiveAssignedBetween retrieves the worker's active-status jobs whose
	// scheduled start falls within [from, to). The job identified by
	// excludeJobID is left out so a job under validation is never compared
	// against itself; pass kernel.UUID{} to exclude nothing.
	GetActiveAssignedBetween(ctx context.Context, workerID kernel.UUID, from, to time.Time, excludeJobID kernel.UUID) ([]*job.Job, error)

	// GetRecurringTemplates retrieves all recurring templates.
	GetRecurringTemplates(ctx context.Context) ([]*job.Job, error)

	// GetInstanceByTemplateAndDate retrieves the generated instance of the
	// template for the given occurrence date, or errs.ErrObjectNotFound when
	// no instance has been materialized yet.
	GetInstanceByTemplateAndDate(ctx context.Context, templateID kernel.UUID, occurrenceDate time.Time) (*job.Job, error)
}
