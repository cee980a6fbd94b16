package jobrepo

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database.
//
// A unique violation on the (parent_template_id, occurrence_date) index is
// translated into an ObjectAlreadyExistsError so callers can detect that another
// generation run already materialized the same occurrence.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("job", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing job to the database.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).
		Preload("Assignees").
		Preload("Checklist").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveAssignedBetween retrieves the active jobs assigned to a worker whose
// scheduled start falls in the half-open interval [from, to). Pass a zero-value
// excludeJobID to exclude nothing.
//
// Recurring templates never leave Draft, so the status filter keeps them out of
// the result without an explicit is_recurring check.
func (r *GormJobRepository) GetActiveAssignedBetween(
	ctx context.Context,
	workerID kernel.UUID,
	from, to time.Time,
	excludeJobID kernel.UUID,
) ([]*job.Job, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]string, 0, len(job.ActiveStatuses()))
	for _, status := range job.ActiveStatuses() {
		statuses = append(statuses, status.String())
	}

	query := r.db.WithContext(ctx).
		Preload("Assignees").
		Preload("Checklist").
		Table("jobs").
		Select("jobs.*").
		Joins("JOIN job_assignees ON job_assignees.job_id = jobs.id AND job_assignees.worker_id = ?",
			workerID.Bytes()).
		Where("jobs.status IN ?", statuses).
		Where("jobs.scheduled_at >= ? AND jobs.scheduled_at < ?", from, to)

	if excludeJobID.Validate() == nil {
		query = query.Where("jobs.id <> ?", excludeJobID.Bytes())
	}

	var dtos []JobDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return jobsToDomain(dtos)
}

// GetRecurringTemplates retrieves all recurring job templates.
func (r *GormJobRepository) GetRecurringTemplates(ctx context.Context) ([]*job.Job, error) {
	var dtos []JobDTO
	if err := r.db.WithContext(ctx).
		Preload("Assignees").
		Preload("Checklist").
		Find(&dtos, "is_recurring = true AND parent_template_id IS NULL").Error; err != nil {
		return nil, err
	}

	return jobsToDomain(dtos)
}

// GetInstanceByTemplateAndDate retrieves the generated instance of a template
// for a particular occurrence date. Returns an ObjectNotFoundError when the
// occurrence has not been materialized yet.
func (r *GormJobRepository) GetInstanceByTemplateAndDate(
	ctx context.Context,
	templateID kernel.UUID,
	occurrenceDate time.Time,
) (*job.Job, error) {
	if err := templateID.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).
		Preload("Assignees").
		Preload("Checklist").
		First(&dto, "parent_template_id = ? AND occurrence_date = ?",
			templateID.Bytes(), occurrenceDate.Format(time.DateOnly)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job instance", templateID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// jobsToDomain converts a slice of DTOs to domain aggregates.
func jobsToDomain(dtos []JobDTO) ([]*job.Job, error) {
	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
