package queries

import (
	"context"
	"time"

	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
)

// ValidateAssignmentQueryHandler resolves a proposed assignment's referents
// and runs the domain validator over them.
//
// A missing worker, job, or location fails the whole call: a dangling
// reference is a caller-side data integrity problem, not a warning. The
// handler pre-fetches the two candidate job sets the pure checkers need (the
// overlap scan window and the workload week) so the validator itself performs
// no I/O.
type ValidateAssignmentQueryHandler struct {
	workerRepo   ports.WorkerRepository
	jobRepo      ports.JobRepository
	locationRepo ports.LocationRepository
	validator    *services.AssignmentValidator
	config       services.Config
}

// NewValidateAssignmentQueryHandler creates a handler for assignment validation.
func NewValidateAssignmentQueryHandler(
	workerRepo ports.WorkerRepository,
	jobRepo ports.JobRepository,
	locationRepo ports.LocationRepository,
	config services.Config,
) ValidateAssignmentQueryHandler {
	return ValidateAssignmentQueryHandler{
		workerRepo:   workerRepo,
		jobRepo:      jobRepo,
		locationRepo: locationRepo,
		validator:    services.NewAssignmentValidator(config),
		config:       config,
	}
}

// Handle executes the validation query.
func (h ValidateAssignmentQueryHandler) Handle(
	ctx context.Context,
	query ValidateAssignmentQuery,
) (ValidateAssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidateAssignmentResponse{}, err
	}

	assignee, err := h.workerRepo.Get(ctx, query.WorkerID())
	if err != nil {
		return ValidateAssignmentResponse{}, err
	}

	site, err := h.locationRepo.Get(ctx, query.LocationID())
	if err != nil {
		return ValidateAssignmentResponse{}, err
	}

	proposed, err := h.jobRepo.Get(ctx, query.JobID())
	if err != nil {
		return ValidateAssignmentResponse{}, err
	}

	durationMinutes := query.DurationMinutes()
	if durationMinutes <= 0 {
		durationMinutes = proposed.DurationMinutes()
	}

	duration := h.config.DefaultJobDuration
	if durationMinutes > 0 {
		duration = time.Duration(durationMinutes) * time.Minute
	}

	proposedAt := query.ProposedAt()
	scanFrom := proposedAt.Add(-h.config.OverlapScanWindow)
	scanTo := proposedAt.Add(duration + h.config.OverlapScanWindow)

	overlapCandidates, err := h.jobRepo.GetActiveAssignedBetween(
		ctx, query.WorkerID(), scanFrom, scanTo, query.JobID())
	if err != nil {
		return ValidateAssignmentResponse{}, err
	}

	weekStart, weekEnd := services.WeekBounds(proposedAt, h.config.WeekStartsOn)
	if query.WeekStart() != nil {
		weekStart = *query.WeekStart()
	}
	if query.WeekEnd() != nil {
		weekEnd = *query.WeekEnd()
	}

	weekJobs, err := h.jobRepo.GetActiveAssignedBetween(
		ctx, query.WorkerID(), weekStart, weekEnd, query.JobID())
	if err != nil {
		return ValidateAssignmentResponse{}, err
	}

	result := h.validator.Validate(services.ValidationInput{
		Worker:            assignee,
		Location:          site,
		ProposedAt:        proposedAt,
		DurationMinutes:   durationMinutes,
		OverlapCandidates: overlapCandidates,
		WeekJobs:          weekJobs,
		WeekStart:         &weekStart,
		WeekEnd:           &weekEnd,
	})

	return ValidateAssignmentResponse{
		Valid:     result.Valid,
		CanAssign: result.CanAssign,
		Warnings:  result.Warnings,
	}, nil
}
