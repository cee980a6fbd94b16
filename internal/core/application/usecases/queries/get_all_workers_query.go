package queries

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/guard"
)

var ErrGetAllWorkersQueryIsNotConstructed = errors.New(
	"GetAllWorkersQuery must be created via NewGetAllWorkersQuery constructor",
)

// GetAllWorkersQuery retrieves all registered workers for roster views.
type GetAllWorkersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllWorkersQuery creates a query to retrieve all workers.
func NewGetAllWorkersQuery() GetAllWorkersQuery {
	return GetAllWorkersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllWorkersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWorkersQueryIsNotConstructed)
}

// GetAllWorkersQueryResponse is the worker read model for roster views.
type GetAllWorkersQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Skills         []string
	MaxWeeklyHours *float64
}
