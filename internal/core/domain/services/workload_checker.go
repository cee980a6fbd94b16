package services

import (
	"fmt"
	"time"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/worker"
)

// WorkloadChecker sums a worker's committed hours within a week and flags a
// proposed assignment that would push the total past the worker's weekly cap.
// Workers without a configured cap are never warned about.
type WorkloadChecker struct {
	config Config
}

// NewWorkloadChecker creates a WorkloadChecker with the given configuration.
func NewWorkloadChecker(config Config) *WorkloadChecker {
	return &WorkloadChecker{config: config}
}

// Check returns at most one warning. The week containing proposedAt is derived
// from Config.WeekStartsOn unless explicit bounds are supplied; weekJobs are
// the worker's other active jobs, and only those scheduled inside the half-open
// week interval count toward the total. The default-duration rule applies to
// every job including the proposed one.
func (c *WorkloadChecker) Check(
	w *worker.Worker,
	weekJobs []*job.Job,
	proposedAt time.Time,
	durationMinutes int,
	weekStart *time.Time,
	weekEnd *time.Time,
) []Warning {
	cap := w.MaxWeeklyHours()
	if cap == nil {
		return nil
	}

	start, end := WeekBounds(proposedAt, c.config.WeekStartsOn)
	if weekStart != nil {
		start = *weekStart
	}
	if weekEnd != nil {
		end = *weekEnd
	}

	var currentHours float64
	for _, other := range weekJobs {
		if other == nil || !other.Status().IsActive() {
			continue
		}
		at := other.ScheduledAt()
		if at == nil || at.Before(start) || !at.Before(end) {
			continue
		}
		currentHours += c.config.effectiveDuration(other.DurationMinutes()).Hours()
	}

	newHours := c.config.effectiveDuration(durationMinutes).Hours()
	totalHours := currentHours + newHours
	if totalHours <= *cap {
		return nil
	}

	return []Warning{{
		Type:     WarningMaxHours,
		Severity: SeverityWarning,
		Message: fmt.Sprintf("weekly hours cap exceeded: %.1f committed + %.1f new = %.1f of %.1f allowed",
			currentHours, newHours, totalHours, *cap),
		Details: MaxHoursDetails{
			CurrentHours: currentHours,
			NewHours:     newHours,
			TotalHours:   totalHours,
			CapHours:     *cap,
		},
	}}
}
