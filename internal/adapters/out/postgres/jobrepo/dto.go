// Package jobrepo provides data transfer objects and mapping functions for job
// persistence. This package implements the repository pattern for the job domain
// aggregate, handling the conversion between domain entities and database
// representations.
//
// The jobs table carries a composite unique index on (parent_template_id,
// occurrence_date) so that at most one generated instance can exist per template
// and occurrence date, even under concurrent generation runs.
package jobrepo

import (
	"slices"
	"time"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Regular jobs, recurring templates, and generated instances share the table;
// IsRecurring and ParentTemplateID distinguish the three shapes.
type JobDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title            string     `gorm:"type:varchar(255);not null"`
	Description      string     `gorm:"type:text"`
	LocationID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ScheduledAt      *time.Time `gorm:"index"`
	DurationMinutes  int        `gorm:"type:int;not null"`
	Status           string     `gorm:"type:varchar(32);not null;index"`
	IsRecurring      bool       `gorm:"not null"`
	Pattern          string     `gorm:"type:varchar(16);not null"`
	ParentTemplateID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_jobs_template_occurrence"`
	OccurrenceDate   *time.Time `gorm:"type:date;uniqueIndex:idx_jobs_template_occurrence"`

	Assignees []AssigneeDTO      `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	Checklist []ChecklistItemDTO `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for job entities.
// Overrides GORM's default naming convention to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// AssigneeDTO links a worker to a job. Position preserves assignment order.
type AssigneeDTO struct {
	JobID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position int       `gorm:"not null"`
}

// TableName specifies the database table name for job assignee rows.
func (AssigneeDTO) TableName() string {
	return "job_assignees"
}

// ChecklistItemDTO represents a checklist item entity owned by a job.
type ChecklistItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"not null"`
	Text     string    `gorm:"type:text;not null"`
	Done     bool      `gorm:"not null"`
}

// TableName specifies the database table name for checklist item entities.
func (ChecklistItemDTO) TableName() string {
	return "checklist_items"
}

// fromDomain converts a job domain aggregate to its database representation.
// Maps all aggregate entities including assignees and checklist items.
func fromDomain(j *job.Job) JobDTO {
	jobID := j.ID().Bytes()

	var parentTemplateID *uuid.UUID
	if id := j.ParentTemplateID(); id != nil {
		raw := id.Bytes()
		parentTemplateID = &raw
	}

	assignees := make([]AssigneeDTO, 0, len(j.Assignees()))
	for i, workerID := range j.Assignees() {
		assignees = append(assignees, AssigneeDTO{
			JobID:    jobID,
			WorkerID: workerID.Bytes(),
			Position: i,
		})
	}

	checklist := make([]ChecklistItemDTO, 0, len(j.Checklist()))
	for _, item := range j.Checklist() {
		checklist = append(checklist, ChecklistItemDTO{
			ID:       item.ID().Bytes(),
			JobID:    jobID,
			Position: item.Position(),
			Text:     item.Text(),
			Done:     item.Done(),
		})
	}

	return JobDTO{
		ID:               jobID,
		Title:            j.Title(),
		Description:      j.Description(),
		LocationID:       j.LocationID().Bytes(),
		ScheduledAt:      j.ScheduledAt(),
		DurationMinutes:  j.DurationMinutes(),
		Status:           j.Status().String(),
		IsRecurring:      j.IsRecurring(),
		Pattern:          j.Pattern().String(),
		ParentTemplateID: parentTemplateID,
		OccurrenceDate:   j.OccurrenceDate(),
		Assignees:        assignees,
		Checklist:        checklist,
	}
}

// toDomain converts a database DTO to a job domain aggregate.
// Reconstructs the complete aggregate including assignees and checklist items
// using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	status, err := job.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pattern, err := job.PatternFromString(dto.Pattern)
	if err != nil {
		return nil, err
	}

	var parentTemplateID *kernel.UUID
	if dto.ParentTemplateID != nil {
		pID, parentErr := kernel.UUIDFromBytes((*dto.ParentTemplateID)[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentTemplateID = &pID
	}

	assigneeRows := slices.Clone(dto.Assignees)
	slices.SortFunc(assigneeRows, func(a, b AssigneeDTO) int { return a.Position - b.Position })

	assigneeIDs := make([]kernel.UUID, 0, len(assigneeRows))
	for _, row := range assigneeRows {
		workerID, workerErr := kernel.UUIDFromBytes(row.WorkerID[:])
		if workerErr != nil {
			return nil, workerErr
		}
		assigneeIDs = append(assigneeIDs, workerID)
	}

	checklist := make([]job.ChecklistItem, 0, len(dto.Checklist))
	for _, row := range dto.Checklist {
		itemID, itemErr := kernel.UUIDFromBytes(row.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := job.RestoreChecklistItem(itemID, row.Position, row.Text, row.Done)
		if itemErr != nil {
			return nil, itemErr
		}
		checklist = append(checklist, item)
	}

	return job.RestoreJob(
		id,
		dto.Title,
		dto.Description,
		locationID,
		dto.ScheduledAt,
		dto.DurationMinutes,
		status,
		assigneeIDs,
		dto.IsRecurring,
		pattern,
		parentTemplateID,
		dto.OccurrenceDate,
		checklist,
	)
}
