package worker

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

var (
	// ErrWorkerIsNotConstructed is returned when a Worker instance was not created
	// through the NewWorker or RestoreWorker factory functions.
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")

	// ErrLeaveRequestNotFound is returned when a leave operation references a leave
	// request the worker does not own.
	ErrLeaveRequestNotFound = errors.New("leave request not found on worker")
)

// Worker is the aggregate root for a schedulable person. It owns the worker's
// skill set, weekly availability windows, optional weekly hours cap, and leave
// requests, and maintains the following invariants:
//
//   - Must have a valid unique identifier and a non-empty name
//   - Skill identifiers are unique within the set
//   - Availability windows are valid (start strictly before end)
//   - The weekly hours cap, when present, is positive
//   - Leave requests follow the pending -> approved/rejected lifecycle
//
// The struct uses private fields to ensure encapsulation; it can only be created
// through NewWorker or reconstructed through RestoreWorker.
type Worker struct {
	id             kernel.UUID
	name           string
	skills         []string
	windows        []AvailabilityWindow
	maxWeeklyHours *float64
	leaves         []*LeaveRequest

	isConstructed bool
}

// NewWorker creates a new Worker with the given identity, name, and skill set.
// Duplicate skills are collapsed; order of first appearance is preserved.
func NewWorker(id kernel.UUID, name string, skills []string) (*Worker, error) {
	w := &Worker{
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
	); err != nil {
		return nil, err
	}

	for _, skill := range skills {
		w.AddSkill(skill)
	}

	return w, nil
}

// RestoreWorker reconstructs a Worker aggregate from persistence, including its
// availability windows, weekly hours cap, and leave requests.
func RestoreWorker(
	id kernel.UUID,
	name string,
	skills []string,
	windows []AvailabilityWindow,
	maxWeeklyHours *float64,
	leaves []*LeaveRequest,
) (*Worker, error) {
	w, err := NewWorker(id, name, skills)
	if err != nil {
		return nil, err
	}

	w.windows = slices.Clone(windows)
	w.leaves = slices.Clone(leaves)

	if maxWeeklyHours != nil {
		if err = w.SetMaxWeeklyHours(*maxWeeklyHours); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// Validate ensures the Worker was created through a factory function.
func (w *Worker) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkerIsNotConstructed
	}

	return nil
}

// IsEqual compares two workers by their unique identifiers.
func (w *Worker) IsEqual(other *Worker) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the worker's unique identifier.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

// Name returns the worker's display name.
func (w *Worker) Name() string {
	return w.name
}

// Skills returns the worker's skill identifiers in order of first addition.
func (w *Worker) Skills() []string {
	return slices.Clone(w.skills)
}

// HasSkill reports whether the worker possesses the given skill.
func (w *Worker) HasSkill(skill string) bool {
	return slices.Contains(w.skills, skill)
}

// AddSkill adds a skill identifier to the worker's set; duplicates are ignored.
func (w *Worker) AddSkill(skill string) {
	if skill == "" || w.HasSkill(skill) {
		return
	}
	w.skills = append(w.skills, skill)
}

// MissingSkills returns the subset of wanted skills the worker does not possess,
// preserving the order of the input.
func (w *Worker) MissingSkills(wanted []string) []string {
	var missing []string
	for _, skill := range wanted {
		if !w.HasSkill(skill) {
			missing = append(missing, skill)
		}
	}
	return missing
}

// Windows returns all availability windows in their declared order.
func (w *Worker) Windows() []AvailabilityWindow {
	return slices.Clone(w.windows)
}

// WindowsOn returns the availability windows declared for the given weekday.
// An empty result means the worker is unavailable that day.
func (w *Worker) WindowsOn(day time.Weekday) []AvailabilityWindow {
	var result []AvailabilityWindow
	for _, window := range w.windows {
		if window.Day() == day {
			result = append(result, window)
		}
	}
	return result
}

// AddAvailabilityWindow appends a weekly availability window.
func (w *Worker) AddAvailabilityWindow(window AvailabilityWindow) {
	w.windows = append(w.windows, window)
}

// MaxWeeklyHours returns the configured weekly hours cap, or nil when the worker
// is uncapped.
func (w *Worker) MaxWeeklyHours() *float64 {
	if w.maxWeeklyHours == nil {
		return nil
	}
	v := *w.maxWeeklyHours
	return &v
}

// SetMaxWeeklyHours configures the weekly hours cap. The cap must be positive.
func (w *Worker) SetMaxWeeklyHours(hours float64) error {
	if hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max weekly hours",
			fmt.Errorf("%v is not greater than 0", hours))
	}
	w.maxWeeklyHours = &hours
	return nil
}

// ClearMaxWeeklyHours removes the weekly hours cap.
func (w *Worker) ClearMaxWeeklyHours() {
	w.maxWeeklyHours = nil
}

// Leaves returns all leave requests owned by the worker.
func (w *Worker) Leaves() []*LeaveRequest {
	return slices.Clone(w.leaves)
}

// RequestLeave records a new pending leave request for the inclusive date range.
func (w *Worker) RequestLeave(id kernel.UUID, startDate, endDate time.Time) (*LeaveRequest, error) {
	leave, err := NewLeaveRequest(id, startDate, endDate)
	if err != nil {
		return nil, err
	}

	w.leaves = append(w.leaves, leave)
	return leave, nil
}

// ApproveLeave approves the worker's leave request with the given identifier.
func (w *Worker) ApproveLeave(leaveID kernel.UUID) error {
	leave := w.findLeave(leaveID)
	if leave == nil {
		return ErrLeaveRequestNotFound
	}
	return leave.Approve()
}

// RejectLeave rejects the worker's leave request with the given identifier.
func (w *Worker) RejectLeave(leaveID kernel.UUID) error {
	leave := w.findLeave(leaveID)
	if leave == nil {
		return ErrLeaveRequestNotFound
	}
	return leave.Reject()
}

// ApprovedLeaveCovering returns every approved leave request whose inclusive
// date range contains the given date.
func (w *Worker) ApprovedLeaveCovering(date time.Time) []*LeaveRequest {
	var covering []*LeaveRequest
	for _, leave := range w.leaves {
		if leave.IsApproved() && leave.Covers(date) {
			covering = append(covering, leave)
		}
	}
	return covering
}

func (w *Worker) findLeave(leaveID kernel.UUID) *LeaveRequest {
	for _, leave := range w.leaves {
		if leave.ID().IsEqual(leaveID) {
			return leave
		}
	}
	return nil
}

func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}
