package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
)

// GetRecurringTemplatesQueryHandler retrieves recurring templates from the database.
type GetRecurringTemplatesQueryHandler struct {
	db *gorm.DB
}

// NewGetRecurringTemplatesQueryHandler creates a handler for template queries.
// Requires a GORM database connection for query execution.
func NewGetRecurringTemplatesQueryHandler(db *gorm.DB) GetRecurringTemplatesQueryHandler {
	return GetRecurringTemplatesQueryHandler{db: db}
}

// Handle executes the query to retrieve all recurring templates sorted by title.
func (h GetRecurringTemplatesQueryHandler) Handle(
	ctx context.Context,
	query GetRecurringTemplatesQuery,
) ([]GetRecurringTemplatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	templates := make([]GetRecurringTemplatesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			pattern
		FROM jobs
		WHERE is_recurring = true
		  AND parent_template_id IS NULL
		ORDER BY title
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var templateResp GetRecurringTemplatesQueryResponse
		var id uuid.UUID
		var pattern string

		err = rows.Scan(
			&id,
			&templateResp.Title,
			&pattern,
		)
		if err != nil {
			return nil, err
		}

		templateID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		templateResp.ID = templateID

		templatePattern, patternErr := job.PatternFromString(pattern)
		if patternErr != nil {
			return nil, patternErr
		}
		templateResp.Pattern = templatePattern

		templates = append(templates, templateResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}
