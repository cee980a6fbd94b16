package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
)

// GetUpcomingJobsQueryHandler retrieves upcoming scheduled jobs from the database.
type GetUpcomingJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetUpcomingJobsQueryHandler creates a handler for schedule queries.
// Requires a GORM database connection for query execution.
func NewGetUpcomingJobsQueryHandler(db *gorm.DB) GetUpcomingJobsQueryHandler {
	return GetUpcomingJobsQueryHandler{db: db}
}

// Handle executes the query to retrieve upcoming active jobs sorted by start
// time. Recurring templates are excluded: only regular jobs and generated
// instances occupy the schedule.
func (h GetUpcomingJobsQueryHandler) Handle(
	ctx context.Context,
	query GetUpcomingJobsQuery,
) ([]GetUpcomingJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetUpcomingJobsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			location_id,
			scheduled_at,
			duration_minutes,
			status
		FROM jobs
		WHERE scheduled_at >= ?
		  AND status IN (?, ?, ?, ?)
		  AND is_recurring = false
		ORDER BY scheduled_at
	`, query.From(),
		job.Planned.String(), job.Assigned.String(),
		job.InProgress.String(), job.Submitted.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobResp GetUpcomingJobsQueryResponse
		var id, locationID uuid.UUID

		err = rows.Scan(
			&id,
			&jobResp.Title,
			&locationID,
			&jobResp.ScheduledAt,
			&jobResp.DurationMinutes,
			&jobResp.Status,
		)
		if err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		jobResp.ID = jobID

		jobLocationID, idErr := kernel.UUIDFromBytes(locationID[:])
		if idErr != nil {
			return nil, idErr
		}
		jobResp.LocationID = jobLocationID

		jobs = append(jobs, jobResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
