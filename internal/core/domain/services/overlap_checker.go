package services

import (
	"fmt"
	"time"

	"fieldops/internal/core/domain/model/job"
)

// OverlapChecker tests a proposed job interval against a worker's other
// active jobs using half-open interval intersection. Callers pre-filter the
// candidate set to jobs starting within Config.OverlapScanWindow of the
// proposed interval; the checker re-applies the active-status and interval
// rules so an over-fetched candidate set stays correct.
type OverlapChecker struct {
	config Config
}

// NewOverlapChecker creates an OverlapChecker with the given configuration.
func NewOverlapChecker(config Config) *OverlapChecker {
	return &OverlapChecker{config: config}
}

// Check returns one warning per candidate job whose interval intersects the
// proposed [start, start+duration) interval. The default-duration rule applies
// to both sides. Unscheduled and non-active candidates are ignored.
func (c *OverlapChecker) Check(proposedStart time.Time, durationMinutes int, otherJobs []*job.Job) []Warning {
	proposedEnd := proposedStart.Add(c.config.effectiveDuration(durationMinutes))

	var warnings []Warning
	for _, other := range otherJobs {
		otherStart, otherEnd, ok := c.interval(other)
		if !ok {
			continue
		}
		if proposedStart.Before(otherEnd) && proposedEnd.After(otherStart) {
			warnings = append(warnings, Warning{
				Type:     WarningOverlap,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("overlaps job %q scheduled %s to %s",
					other.Title(),
					otherStart.Format("2006-01-02 15:04"),
					otherEnd.Format("2006-01-02 15:04")),
				Details: OverlapDetails{
					ConflictingJobID: other.ID(),
					LocationID:       other.LocationID(),
					Start:            otherStart,
					End:              otherEnd,
				},
			})
		}
	}
	return warnings
}

func (c *OverlapChecker) interval(j *job.Job) (time.Time, time.Time, bool) {
	if j == nil || !j.Status().IsActive() {
		return time.Time{}, time.Time{}, false
	}
	start := j.ScheduledAt()
	if start == nil {
		return time.Time{}, time.Time{}, false
	}
	return *start, start.Add(c.config.effectiveDuration(j.DurationMinutes())), true
}
