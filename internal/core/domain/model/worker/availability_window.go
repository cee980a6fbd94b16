package worker

import (
	"fmt"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

// AvailabilityWindow is a value object describing a recurring weekly time range
// in which a worker is available, e.g. "Monday 09:00-17:00". A worker may have
// zero, one, or many windows per day.
type AvailabilityWindow struct {
	day   time.Weekday
	start kernel.TimeOfDay
	end   kernel.TimeOfDay
}

// NewAvailabilityWindow creates a window for the given weekday.
// The start time must be strictly before the end time.
func NewAvailabilityWindow(day time.Weekday, start, end kernel.TimeOfDay) (AvailabilityWindow, error) {
	if day < time.Sunday || day > time.Saturday {
		return AvailabilityWindow{}, errs.NewValueIsOutOfRangeError("day of week", int(day), 0, 6)
	}
	if !start.Before(end) {
		return AvailabilityWindow{}, errs.NewValueIsInvalidErrorWithCause("availability window",
			fmt.Errorf("start %s is not before end %s", start, end))
	}

	return AvailabilityWindow{day: day, start: start, end: end}, nil
}

// Day returns the weekday the window applies to.
func (w AvailabilityWindow) Day() time.Weekday {
	return w.day
}

// Start returns the window's opening time.
func (w AvailabilityWindow) Start() kernel.TimeOfDay {
	return w.start
}

// End returns the window's closing time.
func (w AvailabilityWindow) End() kernel.TimeOfDay {
	return w.end
}

// Contains reports whether the given time of day falls inside the window.
// Both boundaries are inclusive: a proposal at exactly the start or end of a
// window counts as available.
func (w AvailabilityWindow) Contains(t kernel.TimeOfDay) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

// String renders the window as "Mon 09:00-17:00".
func (w AvailabilityWindow) String() string {
	return fmt.Sprintf("%s %s-%s", w.day.String()[:3], w.start, w.end)
}
