package worker

import (
	"fmt"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

// LeaveStatus represents the review state of a leave request.
// Only approved leave is considered by assignment validation.
type LeaveStatus int

const (
	// LeaveStatusUnknown catches uninitialized values.
	LeaveStatusUnknown LeaveStatus = iota

	// LeavePending is the initial status of a newly requested leave.
	LeavePending

	// LeaveApproved marks leave that blocks scheduling for its date range.
	LeaveApproved

	// LeaveRejected marks leave that was declined and has no scheduling effect.
	LeaveRejected
)

func leaveStatusStrings() map[LeaveStatus]string {
	return map[LeaveStatus]string{
		LeaveStatusUnknown: "unknown",
		LeavePending:       "pending",
		LeaveApproved:      "approved",
		LeaveRejected:      "rejected",
	}
}

// Validate checks that the status is one of the defined review states.
func (s LeaveStatus) Validate() error {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("leave status",
			fmt.Errorf("%d is not a valid leave status", s))
	}
}

// String returns the lowercase name of the status.
func (s LeaveStatus) String() string {
	if name, ok := leaveStatusStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// LeaveRequest is an entity owned by the Worker aggregate describing an
// inclusive date range during which the worker has asked not to be scheduled.
type LeaveRequest struct {
	id        kernel.UUID
	startDate time.Time
	endDate   time.Time
	status    LeaveStatus
}

// NewLeaveRequest creates a pending leave request for the inclusive date range
// [startDate, endDate]. Timestamps are normalized to their date component.
func NewLeaveRequest(id kernel.UUID, startDate, endDate time.Time) (*LeaveRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	start := dateOnly(startDate)
	end := dateOnly(endDate)
	if end.Before(start) {
		return nil, errs.NewValueIsInvalidErrorWithCause("leave range",
			fmt.Errorf("end date %s is before start date %s",
				end.Format(time.DateOnly), start.Format(time.DateOnly)))
	}

	return &LeaveRequest{
		id:        id,
		startDate: start,
		endDate:   end,
		status:    LeavePending,
	}, nil
}

// RestoreLeaveRequest reconstructs a leave request from persistence.
func RestoreLeaveRequest(id kernel.UUID, startDate, endDate time.Time, status LeaveStatus) (*LeaveRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &LeaveRequest{
		id:        id,
		startDate: dateOnly(startDate),
		endDate:   dateOnly(endDate),
		status:    status,
	}, nil
}

// ID returns the leave request identifier.
func (l *LeaveRequest) ID() kernel.UUID {
	return l.id
}

// StartDate returns the first day of leave (inclusive).
func (l *LeaveRequest) StartDate() time.Time {
	return l.startDate
}

// EndDate returns the last day of leave (inclusive).
func (l *LeaveRequest) EndDate() time.Time {
	return l.endDate
}

// Status returns the current review state.
func (l *LeaveRequest) Status() LeaveStatus {
	return l.status
}

// IsApproved reports whether the leave has been approved.
func (l *LeaveRequest) IsApproved() bool {
	return l.status == LeaveApproved
}

// Covers reports whether the given date falls inside the inclusive leave range.
func (l *LeaveRequest) Covers(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(l.startDate) && !d.After(l.endDate)
}

// Approve moves a pending request to approved.
func (l *LeaveRequest) Approve() error {
	if l.status != LeavePending {
		return errs.NewValueIsInvalidErrorWithCause("leave status",
			fmt.Errorf("cannot approve leave in status %s", l.status))
	}
	l.status = LeaveApproved
	return nil
}

// Reject moves a pending request to rejected.
func (l *LeaveRequest) Reject() error {
	if l.status != LeavePending {
		return errs.NewValueIsInvalidErrorWithCause("leave status",
			fmt.Errorf("cannot reject leave in status %s", l.status))
	}
	l.status = LeaveRejected
	return nil
}

// dateOnly truncates a timestamp to midnight in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
