package services

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
)

// WarningType tags the kind of conflict a warning describes.
type WarningType string

const (
	// WarningSkillMismatch flags skills the location declares but the worker lacks.
	WarningSkillMismatch WarningType = "skill_mismatch"

	// WarningAvailability flags a proposal outside the worker's weekly windows.
	WarningAvailability WarningType = "availability"

	// WarningOverlap flags intersection with another active job of the worker.
	WarningOverlap WarningType = "overlap"

	// WarningMaxHours flags a week total exceeding the worker's hours cap.
	WarningMaxHours WarningType = "max_hours"

	// WarningOnLeave flags a proposal inside an approved leave range.
	WarningOnLeave WarningType = "on_leave"
)

// Severity grades a warning. The checkers in this package only ever produce
// SeverityWarning; nothing they find blocks an assignment.
type Severity string

// SeverityWarning marks an informational, non-blocking finding.
const SeverityWarning Severity = "warning"

// Warning is a single non-blocking conflict finding on a proposed assignment.
// Details holds a per-type payload; consumers switch on the concrete type to
// handle each warning kind exhaustively.
type Warning struct {
	Type     WarningType
	Severity Severity
	Message  string
	Details  WarningDetails
}

// WarningDetails is the closed set of per-type warning payloads. It is
// implemented only by the detail structs in this package.
type WarningDetails interface {
	isWarningDetails()
}

// SkillMismatchDetails lists the skills the worker is missing. Required
// distinguishes the mandatory set from the preferred one.
type SkillMismatchDetails struct {
	MissingSkills []string
	Required      bool
}

// AvailabilityDetails describes why a proposed time missed the worker's
// weekly windows. Windows is empty when the worker has none for the weekday.
type AvailabilityDetails struct {
	Day           time.Weekday
	AttemptedTime kernel.TimeOfDay
	Windows       []string
}

// LeaveRange is one approved leave interval (inclusive dates).
type LeaveRange struct {
	StartDate time.Time
	EndDate   time.Time
}

// OnLeaveDetails lists the approved leave ranges covering the proposed date.
type OnLeaveDetails struct {
	Ranges []LeaveRange
}

// OverlapDetails identifies one conflicting active job of the worker.
type OverlapDetails struct {
	ConflictingJobID kernel.UUID
	LocationID       kernel.UUID
	Start            time.Time
	End              time.Time
}

// MaxHoursDetails reports the weekly hours arithmetic behind a cap breach.
type MaxHoursDetails struct {
	CurrentHours float64
	NewHours     float64
	TotalHours   float64
	CapHours     float64
}

func (SkillMismatchDetails) isWarningDetails() {}
func (AvailabilityDetails) isWarningDetails()  {}
func (OnLeaveDetails) isWarningDetails()       {}
func (OverlapDetails) isWarningDetails()       {}
func (MaxHoursDetails) isWarningDetails()      {}
