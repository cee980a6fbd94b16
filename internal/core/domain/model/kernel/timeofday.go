package kernel

import (
	"fmt"
	"time"

	"fieldops/internal/pkg/errs"
)

// TimeOfDay is a value object representing a wall-clock time within a single day,
// stored as minutes since midnight. It is used for worker availability windows,
// which are defined in local time-of-day terms rather than absolute timestamps.
//
// The zero value is midnight, which is a valid time of day; construction through
// NewTimeOfDay or ParseTimeOfDay only enforces range validation.
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay creates a TimeOfDay from an hour (0-23) and a minute (0-59).
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}

	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay parses a "15:04" formatted string into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}

	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

// TimeOfDayFromTime extracts the time-of-day component of a timestamp,
// interpreted in the timestamp's own location.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

// Minutes returns the total minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// String returns the "15:04" representation.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
