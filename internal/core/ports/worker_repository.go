package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for worker aggregates,
// including their availability windows and leave requests.
type WorkerRepository interface {
	// Add persists a new worker aggregate to storage.
	Add(ctx context.Context, aggregate *worker.Worker) error

	// Update persists changes to an existing worker aggregate.
	Update(ctx context.Context, aggregate *worker.Worker) error

	// Get retrieves a worker aggregate by its unique identifier.
	// Returns the complete worker with windows, cap, and leave requests.
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)
}
