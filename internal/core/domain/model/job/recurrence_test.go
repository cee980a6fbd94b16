package job_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/core/domain/model/job"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPatternFromString(t *testing.T) {
	t.Run("parses valid patterns", func(t *testing.T) {
		for name, expected := range map[string]job.Pattern{
			"daily":    job.PatternDaily,
			"weekly":   job.PatternWeekly,
			"biweekly": job.PatternBiweekly,
			"monthly":  job.PatternMonthly,
			"":         job.PatternNone,
		} {
			p, err := job.PatternFromString(name)
			require.NoError(t, err)
			assert.Equal(t, expected, p)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := job.PatternFromString("fortnightly")
		assert.Error(t, err)
	})
}

func TestPatternValidate(t *testing.T) {
	assert.NoError(t, job.PatternDaily.Validate())
	assert.NoError(t, job.PatternMonthly.Validate())
	assert.Error(t, job.PatternNone.Validate())
	assert.Error(t, job.Pattern(99).Validate())
}

func TestPatternNext(t *testing.T) {
	monday := date(2025, time.June, 2)

	assert.Equal(t, date(2025, time.June, 3), job.PatternDaily.Next(monday))
	assert.Equal(t, date(2025, time.June, 9), job.PatternWeekly.Next(monday))
	assert.Equal(t, date(2025, time.June, 16), job.PatternBiweekly.Next(monday))
	assert.Equal(t, date(2025, time.July, 2), job.PatternMonthly.Next(monday))
}

func TestPatternNextMonthlyNormalizesOverflow(t *testing.T) {
	// Jan 31 + 1 month has no Feb 31; time.AddDate rolls it into March.
	next := job.PatternMonthly.Next(date(2025, time.January, 31))
	assert.Equal(t, date(2025, time.March, 3), next)
}

func TestOccurrences(t *testing.T) {
	monday := date(2025, time.June, 2)

	t.Run("daily over seven days yields seven dates", func(t *testing.T) {
		dates := job.Occurrences(job.PatternDaily, monday, 7)
		require.Len(t, dates, 7)
		assert.Equal(t, date(2025, time.June, 3), dates[0])
		assert.Equal(t, date(2025, time.June, 9), dates[6])
	})

	t.Run("weekly over seven days yields exactly the boundary date", func(t *testing.T) {
		dates := job.Occurrences(job.PatternWeekly, monday, 7)
		require.Len(t, dates, 1)
		assert.Equal(t, date(2025, time.June, 9), dates[0])
	})

	t.Run("biweekly over seven days yields nothing", func(t *testing.T) {
		assert.Empty(t, job.Occurrences(job.PatternBiweekly, monday, 7))
	})

	t.Run("monthly over ninety days yields two dates", func(t *testing.T) {
		// 90 days from Jun 2 is Aug 31, so Sep 2 falls past the boundary.
		dates := job.Occurrences(job.PatternMonthly, monday, 90)
		require.Len(t, dates, 2)
		assert.Equal(t, date(2025, time.July, 2), dates[0])
		assert.Equal(t, date(2025, time.August, 2), dates[1])
	})

	t.Run("start timestamp is truncated to its date", func(t *testing.T) {
		lateMonday := time.Date(2025, time.June, 2, 23, 45, 0, 0, time.UTC)
		dates := job.Occurrences(job.PatternDaily, lateMonday, 1)
		require.Len(t, dates, 1)
		assert.Equal(t, date(2025, time.June, 3), dates[0])
	})

	t.Run("invalid pattern or horizon yields nothing", func(t *testing.T) {
		assert.Empty(t, job.Occurrences(job.PatternNone, monday, 7))
		assert.Empty(t, job.Occurrences(job.PatternDaily, monday, 0))
		assert.Empty(t, job.Occurrences(job.PatternDaily, monday, -3))
	})
}
