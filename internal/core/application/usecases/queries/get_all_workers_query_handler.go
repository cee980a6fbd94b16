package queries

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fieldops/internal/core/domain/model/kernel"
)

// GetAllWorkersQueryHandler retrieves worker read models from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetAllWorkersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllWorkersQueryHandler creates a handler for worker roster queries.
// Requires a GORM database connection for query execution.
func NewGetAllWorkersQueryHandler(db *gorm.DB) GetAllWorkersQueryHandler {
	return GetAllWorkersQueryHandler{db: db}
}

// Handle executes the query to retrieve all workers sorted by name.
// Skills are aggregated per worker in their declared order.
func (h GetAllWorkersQueryHandler) Handle(
	ctx context.Context,
	query GetAllWorkersQuery,
) ([]GetAllWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workers := make([]GetAllWorkersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			w.id,
			w.name,
			w.max_weekly_hours,
			COALESCE(string_agg(s.skill, ',' ORDER BY s.position), '')
		FROM workers w
		LEFT JOIN worker_skills s ON s.worker_id = w.id
		GROUP BY w.id, w.name, w.max_weekly_hours
		ORDER BY w.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var workerResp GetAllWorkersQueryResponse
		var id uuid.UUID
		var maxWeeklyHours sql.NullFloat64
		var skills string

		err = rows.Scan(
			&id,
			&workerResp.Name,
			&maxWeeklyHours,
			&skills,
		)
		if err != nil {
			return nil, err
		}

		workerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		workerResp.ID = workerID

		if maxWeeklyHours.Valid {
			v := maxWeeklyHours.Float64
			workerResp.MaxWeeklyHours = &v
		}
		if skills != "" {
			workerResp.Skills = strings.Split(skills, ",")
		}

		workers = append(workers, workerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}
