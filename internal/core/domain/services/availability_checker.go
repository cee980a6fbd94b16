package services

import (
	"fmt"
	"strings"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/worker"
)

// AvailabilityChecker compares a proposed time against a worker's weekly
// availability windows and approved leave.
//
// The window check and the leave check are independent: a proposal inside a
// declared window still gets an on-leave warning when approved leave covers
// the date, and a day with no windows warns regardless of leave.
type AvailabilityChecker struct{}

// NewAvailabilityChecker creates an AvailabilityChecker.
func NewAvailabilityChecker() *AvailabilityChecker {
	return &AvailabilityChecker{}
}

// Check returns at most one availability warning (no windows for the weekday,
// or time of day outside every window) plus at most one on-leave warning.
func (c *AvailabilityChecker) Check(w *worker.Worker, proposedAt time.Time) []Warning {
	var warnings []Warning

	if warning := c.checkWindows(w, proposedAt); warning != nil {
		warnings = append(warnings, *warning)
	}
	if warning := c.checkLeave(w, proposedAt); warning != nil {
		warnings = append(warnings, *warning)
	}

	return warnings
}

func (c *AvailabilityChecker) checkWindows(w *worker.Worker, proposedAt time.Time) *Warning {
	day := proposedAt.Weekday()
	windows := w.WindowsOn(day)

	if len(windows) == 0 {
		return &Warning{
			Type:     WarningAvailability,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("worker has no availability windows on %s", day),
			Details:  AvailabilityDetails{Day: day, AttemptedTime: kernel.TimeOfDayFromTime(proposedAt)},
		}
	}

	attempted := kernel.TimeOfDayFromTime(proposedAt)
	declared := make([]string, 0, len(windows))
	for _, window := range windows {
		if window.Contains(attempted) {
			return nil
		}
		declared = append(declared, window.String())
	}

	return &Warning{
		Type:     WarningAvailability,
		Severity: SeverityWarning,
		Message: fmt.Sprintf("proposed time %s is outside available hours (%s)",
			attempted, strings.Join(declared, ", ")),
		Details: AvailabilityDetails{Day: day, AttemptedTime: attempted, Windows: declared},
	}
}

func (c *AvailabilityChecker) checkLeave(w *worker.Worker, proposedAt time.Time) *Warning {
	leaves := w.ApprovedLeaveCovering(proposedAt)
	if len(leaves) == 0 {
		return nil
	}

	ranges := make([]LeaveRange, 0, len(leaves))
	described := make([]string, 0, len(leaves))
	for _, leave := range leaves {
		ranges = append(ranges, LeaveRange{StartDate: leave.StartDate(), EndDate: leave.EndDate()})
		described = append(described, fmt.Sprintf("%s to %s",
			leave.StartDate().Format(time.DateOnly), leave.EndDate().Format(time.DateOnly)))
	}

	return &Warning{
		Type:     WarningOnLeave,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("worker is on approved leave: %s", strings.Join(described, ", ")),
		Details:  OnLeaveDetails{Ranges: ranges},
	}
}
