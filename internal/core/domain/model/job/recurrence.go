package job

import (
	"fmt"
	"time"

	"fieldops/internal/pkg/errs"
)

// Pattern represents the fixed repetition increment of a recurring job template.
type Pattern int

const (
	// PatternNone marks a non-recurring job.
	PatternNone Pattern = iota

	// PatternDaily steps one day at a time.
	PatternDaily

	// PatternWeekly steps seven days at a time.
	PatternWeekly

	// PatternBiweekly steps fourteen days at a time.
	PatternBiweekly

	// PatternMonthly steps one calendar month at a time.
	PatternMonthly
)

func patternStrings() map[Pattern]string {
	return map[Pattern]string{
		PatternNone:     "",
		PatternDaily:    "daily",
		PatternWeekly:   "weekly",
		PatternBiweekly: "biweekly",
		PatternMonthly:  "monthly",
	}
}

// PatternFromString parses a persisted pattern name. The empty string maps to
// PatternNone.
func PatternFromString(name string) (Pattern, error) {
	for pattern, s := range patternStrings() {
		if s == name {
			return pattern, nil
		}
	}
	return PatternNone, errs.NewValueIsInvalidErrorWithCause("recurring pattern",
		fmt.Errorf("%q is not a valid pattern", name))
}

// Validate checks that the pattern is one of the recurring increments.
// PatternNone fails validation: templates must carry a real pattern.
func (p Pattern) Validate() error {
	switch p {
	case PatternDaily, PatternWeekly, PatternBiweekly, PatternMonthly:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("recurring pattern",
			fmt.Errorf("%d is not a valid pattern", p))
	}
}

// String returns the lowercase pattern name; PatternNone renders empty.
func (p Pattern) String() string {
	if name, ok := patternStrings()[p]; ok {
		return name
	}
	return ""
}

// Next returns the occurrence date following the given date.
// Monthly stepping uses calendar months via time.AddDate, which normalizes
// overflow (Jan 31 + 1 month lands in early March).
func (p Pattern) Next(date time.Time) time.Time {
	switch p {
	case PatternDaily:
		return date.AddDate(0, 0, 1)
	case PatternWeekly:
		return date.AddDate(0, 0, 7)
	case PatternBiweekly:
		return date.AddDate(0, 0, 14)
	case PatternMonthly:
		return date.AddDate(0, 1, 0)
	default:
		return date
	}
}

// Occurrences computes the candidate occurrence dates of a pattern, starting
// strictly after from and continuing while the date does not pass the horizon
// boundary from+horizonDays. The boundary itself is included: a weekly pattern
// asked for 7 days ahead from a Monday yields exactly next Monday.
func Occurrences(p Pattern, from time.Time, horizonDays int) []time.Time {
	if p.Validate() != nil || horizonDays <= 0 {
		return nil
	}

	start := dateOnly(from)
	boundary := start.AddDate(0, 0, horizonDays)

	var dates []time.Time
	for d := p.Next(start); !d.After(boundary); d = p.Next(d) {
		dates = append(dates, d)
	}
	return dates
}

// dateOnly truncates a timestamp to midnight in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
