// Package kernel provides shared value objects used across the fieldops domain model.
//
// The package includes:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//   - TimeOfDay: a wall-clock time-of-day used by worker availability windows
//
// Kernel types carry no aggregate-specific behavior. They exist so that the
// worker, job, and location aggregates share a single validated representation
// of identity and local time instead of passing raw strings around.
package kernel
