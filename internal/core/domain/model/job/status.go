package job

import (
	"fmt"

	"fieldops/internal/pkg/errs"
)

// Status represents the lifecycle state of a job.
// It implements a state machine with defined transitions to ensure jobs follow
// the correct operational workflow.
//
// State transitions:
//
//	Draft ──> Planned ──> Assigned ──> InProgress ──> Submitted ──┬──> Approved ──┐
//	                          │                                   │               ├──> Archived
//	                          └ (reassignment allowed)            └──> Rejected ──┘
//
// Status is a value object that validates state transitions and provides string
// representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Draft is the initial status of an unscheduled job, a recurring template,
	// or a freshly generated instance.
	Draft

	// Planned indicates the job has a schedule but no confirmed crew.
	Planned

	// Assigned indicates at least one worker has been committed to the job.
	// Reassignment is allowed while in this status.
	Assigned

	// InProgress indicates work at the location has started.
	InProgress

	// Submitted indicates the crew has reported the work finished and it awaits review.
	Submitted

	// Approved indicates the submitted work passed review.
	Approved

	// Rejected indicates the submitted work failed review.
	Rejected

	// Archived is the terminal state for reviewed jobs.
	Archived
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Draft:         "draft",
		Planned:       "planned",
		Assigned:      "assigned",
		InProgress:    "in-progress",
		Submitted:     "submitted",
		Approved:      "approved",
		Rejected:      "rejected",
		Archived:      "archived",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "draft",
		Planned:    "planned",
		Assigned:   "assigned",
		InProgress: "in-progress",
		Submitted:  "submitted",
		Approved:   "approved",
		Rejected:   "rejected",
		Archived:   "archived",
	}
}

// ActiveStatuses returns the status subset counted by overlap and workload
// validation. Draft, approved, rejected, and archived jobs do not occupy a
// worker's schedule.
func ActiveStatuses() []Status {
	return []Status{Planned, Assigned, InProgress, Submitted}
}

// Validate checks if the Status value is one of the defined workflow states.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer; unknown values render as "unknown".
func (s Status) String() string {
	if name, ok := statusStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// StatusFromString parses a persisted status name back into a Status.
func StatusFromString(name string) (Status, error) {
	for status, s := range validStatusStrings() {
		if s == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", name))
}

// IsActive reports whether the status belongs to the active subset considered
// by overlap and workload validation.
func (s Status) IsActive() bool {
	switch s {
	case Planned, Assigned, InProgress, Submitted:
		return true
	default:
		return false
	}
}

// Plan transitions Draft to Planned.
func (s Status) Plan() (Status, error) {
	if s != Draft {
		return StatusUnknown, s.transitionError("plan")
	}
	return Planned, nil
}

// Assign transitions Planned to Assigned. Reassignment while already Assigned
// is allowed.
func (s Status) Assign() (Status, error) {
	if s != Planned && s != Assigned {
		return StatusUnknown, s.transitionError("assign")
	}
	return Assigned, nil
}

// Start transitions Assigned to InProgress.
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return StatusUnknown, s.transitionError("start")
	}
	return InProgress, nil
}

// Submit transitions InProgress to Submitted.
func (s Status) Submit() (Status, error) {
	if s != InProgress {
		return StatusUnknown, s.transitionError("submit")
	}
	return Submitted, nil
}

// Approve transitions Submitted to Approved.
func (s Status) Approve() (Status, error) {
	if s != Submitted {
		return StatusUnknown, s.transitionError("approve")
	}
	return Approved, nil
}

// Reject transitions Submitted to Rejected.
func (s Status) Reject() (Status, error) {
	if s != Submitted {
		return StatusUnknown, s.transitionError("reject")
	}
	return Rejected, nil
}

// Archive transitions Approved or Rejected to Archived.
func (s Status) Archive() (Status, error) {
	if s != Approved && s != Rejected {
		return StatusUnknown, s.transitionError("archive")
	}
	return Archived, nil
}

func (s Status) transitionError(action string) error {
	return errs.NewValueIsInvalidErrorWithCause("status transition",
		fmt.Errorf("cannot %s job in status %s", action, s))
}
