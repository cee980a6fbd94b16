package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for location aggregates
// and their skill requirements.
type LocationRepository interface {
	// Add persists a new location aggregate to storage.
	Add(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a location aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)
}
