package queries

import (
	"errors"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrGetRecurringTemplatesQueryIsNotConstructed = errors.New(
	"GetRecurringTemplatesQuery must be created via NewGetRecurringTemplatesQuery constructor",
)

// GetRecurringTemplatesQuery retrieves all recurring templates.
// Feeds the background generation job with the templates to expand.
type GetRecurringTemplatesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRecurringTemplatesQuery creates a query to retrieve recurring templates.
func NewGetRecurringTemplatesQuery() GetRecurringTemplatesQuery {
	return GetRecurringTemplatesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRecurringTemplatesQuery) Validate() error {
	return q.guard.Validate(ErrGetRecurringTemplatesQueryIsNotConstructed)
}

// GetRecurringTemplatesQueryResponse is the template read model.
type GetRecurringTemplatesQueryResponse struct {
	ID      kernel.UUID
	Title   string
	Pattern job.Pattern
}
