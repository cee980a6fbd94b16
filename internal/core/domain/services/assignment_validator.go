package services

import (
	"sync"
	"time"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/location"
	"fieldops/internal/core/domain/model/worker"
)

// ValidationInput carries a fully resolved proposed assignment. The caller
// fetches the worker, the location, and the two candidate job sets; the
// validator itself performs no I/O.
type ValidationInput struct {
	Worker          *worker.Worker
	Location        *location.Location
	ProposedAt      time.Time
	DurationMinutes int

	// OverlapCandidates are the worker's other active jobs starting near the
	// proposed interval (the job under validation excluded).
	OverlapCandidates []*job.Job

	// WeekJobs are the worker's other active jobs within the relevant week
	// (the job under validation excluded).
	WeekJobs []*job.Job

	// WeekStart and WeekEnd override the derived week bounds when set.
	WeekStart *time.Time
	WeekEnd   *time.Time
}

// ValidationResult aggregates all checker findings. Valid and CanAssign are
// always true: warnings inform, they never block.
type ValidationResult struct {
	Valid     bool
	CanAssign bool
	Warnings  []Warning
}

// AssignmentValidator orchestrates the four assignment checkers.
type AssignmentValidator struct {
	skill        *SkillChecker
	availability *AvailabilityChecker
	overlap      *OverlapChecker
	workload     *WorkloadChecker
}

// NewAssignmentValidator creates a validator wiring all four checkers with the
// given configuration.
func NewAssignmentValidator(config Config) *AssignmentValidator {
	return &AssignmentValidator{
		skill:        NewSkillChecker(),
		availability: NewAvailabilityChecker(),
		overlap:      NewOverlapChecker(config),
		workload:     NewWorkloadChecker(config),
	}
}

// Validate fans the checkers out concurrently, joins on all of them, and
// concatenates their warnings in a fixed order: skill, availability and
// leave, overlap, workload. The checkers are read-only and independent, so
// no ordering is required between them while running.
func (v *AssignmentValidator) Validate(input ValidationInput) ValidationResult {
	var results [4][]Warning

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		results[0] = v.skill.Check(input.Worker, input.Location)
	}()
	go func() {
		defer wg.Done()
		results[1] = v.availability.Check(input.Worker, input.ProposedAt)
	}()
	go func() {
		defer wg.Done()
		results[2] = v.overlap.Check(input.ProposedAt, input.DurationMinutes, input.OverlapCandidates)
	}()
	go func() {
		defer wg.Done()
		results[3] = v.workload.Check(input.Worker, input.WeekJobs,
			input.ProposedAt, input.DurationMinutes, input.WeekStart, input.WeekEnd)
	}()

	wg.Wait()

	var warnings []Warning
	for _, r := range results {
		warnings = append(warnings, r...)
	}

	return ValidationResult{Valid: true, CanAssign: true, Warnings: warnings}
}
