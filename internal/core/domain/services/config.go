package services

import "time"

// Config carries the tunable knobs of assignment validation.
type Config struct {
	// DefaultJobDuration is assumed for jobs with no estimated duration.
	DefaultJobDuration time.Duration

	// OverlapScanWindow bounds the candidate fetch around a proposed interval.
	// Any true overlap must start within one job duration of the proposed
	// boundary, so the window only needs to exceed the longest expected job.
	OverlapScanWindow time.Duration

	// WeekStartsOn anchors the week used for workload calculations.
	WeekStartsOn time.Weekday
}

// DefaultConfig returns the standard validation configuration:
// two-hour default duration, three-hour overlap scan, Sunday week start.
func DefaultConfig() Config {
	return Config{
		DefaultJobDuration: 2 * time.Hour,
		OverlapScanWindow:  3 * time.Hour,
		WeekStartsOn:       time.Sunday,
	}
}

// effectiveDuration applies the default-duration rule to a job's estimated
// minutes. Zero or negative means "unset".
func (c Config) effectiveDuration(durationMinutes int) time.Duration {
	if durationMinutes <= 0 {
		return c.DefaultJobDuration
	}
	return time.Duration(durationMinutes) * time.Minute
}

// WeekBounds returns the half-open week interval [start, end) containing t,
// anchored on the given weekday. Boundaries are midnight in t's location.
func WeekBounds(t time.Time, startsOn time.Weekday) (time.Time, time.Time) {
	d := dateOnly(t)
	offset := (int(d.Weekday()) - int(startsOn) + 7) % 7
	start := d.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
