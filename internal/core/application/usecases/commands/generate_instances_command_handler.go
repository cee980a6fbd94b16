package commands

import (
	"context"
	"errors"
	"time"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

// GenerationFailure records a candidate date whose instance could not be
// created. Failures do not abort the batch; already materialized dates stay.
type GenerationFailure struct {
	OccurrenceDate time.Time
	Err            error
}

// GenerateInstancesResult aggregates the outcome of one generation run.
// Instances holds both pre-existing and newly created instances in date
// order; CreatedCount counts only the new ones.
type GenerateInstancesResult struct {
	Instances    []*job.Job
	CreatedCount int
	Failures     []GenerationFailure
}

// GenerateInstancesCommandHandler materializes the dated instances of a
// recurring template.
//
// Each candidate date runs in its own transaction so a failed date rolls back
// alone (an instance is never persisted without its checklist) and does not
// abort the rest of the batch. The uniqueness of (template, occurrence date)
// is enforced by a storage-layer constraint: a duplicate-key error on insert
// means another invocation won the race, and the existing instance is fetched
// and included instead.
type GenerateInstancesCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewGenerateInstancesCommandHandler creates a handler for instance generation.
func NewGenerateInstancesCommandHandler(uowFactory JobUoWFactory) GenerateInstancesCommandHandler {
	return GenerateInstancesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the generation command.
// Fails the whole call when the template is missing or not a recurring
// template; per-date creation failures are collected in the result instead.
// Running the same command twice creates nothing on the second run, and a
// larger horizon only adds the newly reachable dates.
func (h GenerateInstancesCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateInstancesCommand,
) (GenerateInstancesResult, error) {
	if err := cmd.Validate(); err != nil {
		return GenerateInstancesResult{}, err
	}

	template, err := h.loadTemplate(ctx, cmd.TemplateID())
	if err != nil {
		return GenerateInstancesResult{}, err
	}

	start := time.Now()
	if cmd.StartDate() != nil {
		start = *cmd.StartDate()
	}

	var result GenerateInstancesResult
	for _, date := range job.Occurrences(template.Pattern(), start, cmd.DaysAhead()) {
		instance, created, genErr := h.generateOne(ctx, template, date)
		if genErr != nil {
			result.Failures = append(result.Failures, GenerationFailure{
				OccurrenceDate: date,
				Err:            genErr,
			})
			continue
		}

		result.Instances = append(result.Instances, instance)
		if created {
			result.CreatedCount++
		}
	}

	return result, nil
}

func (h GenerateInstancesCommandHandler) loadTemplate(ctx context.Context, templateID kernel.UUID) (*job.Job, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	template, err := uow.JobRepository().Get(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if !template.IsTemplate() {
		return nil, errs.NewObjectNotFoundErrorWithCause("templateID", templateID, job.ErrNotATemplate)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return template, nil
}

// generateOne materializes the instance for one occurrence date inside its own
// transaction. Returns the instance and whether it was newly created.
func (h GenerateInstancesCommandHandler) generateOne(
	ctx context.Context,
	template *job.Job,
	date time.Time,
) (*job.Job, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	existing, err := jobRepo.GetInstanceByTemplateAndDate(ctx, template.ID(), date)
	if err == nil {
		if err = uow.Commit(ctx); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	instance, err := template.NewInstance(kernel.NewUUID(), date)
	if err != nil {
		return nil, false, err
	}

	if err = jobRepo.Add(ctx, instance); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			// Lost the race to a concurrent invocation. The transaction is
			// poisoned by the constraint violation, so fetch the winner's
			// instance through a fresh one.
			_ = uow.Rollback(ctx)
			return h.fetchExisting(ctx, template.ID(), date)
		}
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return instance, true, nil
}

func (h GenerateInstancesCommandHandler) fetchExisting(
	ctx context.Context,
	templateID kernel.UUID,
	date time.Time,
) (*job.Job, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.JobRepository().GetInstanceByTemplateAndDate(ctx, templateID, date)
	if err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return existing, false, nil
}
