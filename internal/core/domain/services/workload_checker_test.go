package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/services"
)

func TestWeekBounds(t *testing.T) {
	t.Run("sunday start", func(t *testing.T) {
		// 2025-06-04 is a Wednesday.
		start, end := services.WeekBounds(
			time.Date(2025, time.June, 4, 15, 30, 0, 0, time.UTC), time.Sunday)

		assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("anchor day maps to itself", func(t *testing.T) {
		sunday := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
		start, _ := services.WeekBounds(sunday, time.Sunday)
		assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("monday start", func(t *testing.T) {
		start, end := services.WeekBounds(
			time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC), time.Monday)

		assert.Equal(t, time.Date(2025, time.May, 26, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), end)
	})
}

func TestWorkloadChecker(t *testing.T) {
	checker := services.NewWorkloadChecker(services.DefaultConfig())

	// 2025-06-04 is a Wednesday; its Sunday-anchored week is Jun 1 - Jun 7.
	wednesday := time.Date(2025, time.June, 4, 9, 0, 0, 0, time.UTC)

	t.Run("worker without a cap is never warned", func(t *testing.T) {
		w := newTestWorker(t)
		busy := newActiveJob(t, "Long job", wednesday, 60*100)

		assert.Empty(t, checker.Check(w, []*job.Job{busy}, wednesday, 180, nil, nil))
	})

	t.Run("total under the cap is clean", func(t *testing.T) {
		w := newTestWorker(t)
		require.NoError(t, w.SetMaxWeeklyHours(40))
		committed := newActiveJob(t, "Shift", wednesday.Add(-24*time.Hour), 20*60)

		assert.Empty(t, checker.Check(w, []*job.Job{committed}, wednesday, 180, nil, nil))
	})

	t.Run("38 committed plus 3 new against a 40 cap warns with total 41", func(t *testing.T) {
		w := newTestWorker(t)
		require.NoError(t, w.SetMaxWeeklyHours(40))

		committed := []*job.Job{
			newActiveJob(t, "Monday shift", time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC), 19*60),
			newActiveJob(t, "Tuesday shift", time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC), 19*60),
		}

		warnings := checker.Check(w, committed, wednesday, 180, nil, nil)
		require.Len(t, warnings, 1)
		assert.Equal(t, services.WarningMaxHours, warnings[0].Type)
		assert.Equal(t, services.SeverityWarning, warnings[0].Severity)

		details, ok := warnings[0].Details.(services.MaxHoursDetails)
		require.True(t, ok)
		assert.InDelta(t, 38, details.CurrentHours, 0.001)
		assert.InDelta(t, 3, details.NewHours, 0.001)
		assert.InDelta(t, 41, details.TotalHours, 0.001)
		assert.InDelta(t, 40, details.CapHours, 0.001)
	})

	t.Run("reaching the cap exactly is clean", func(t *testing.T) {
		w := newTestWorker(t)
		require.NoError(t, w.SetMaxWeeklyHours(40))
		committed := newActiveJob(t, "Shift", wednesday.Add(-24*time.Hour), 37*60)

		assert.Empty(t, checker.Check(w, []*job.Job{committed}, wednesday, 180, nil, nil))
	})

	t.Run("jobs outside the week do not count", func(t *testing.T) {
		w := newTestWorker(t)
		require.NoError(t, w.SetMaxWeeklyHours(40))

		lastWeek := newActiveJob(t, "Last week",
			time.Date(2025, time.May, 28, 8, 0, 0, 0, time.UTC), 39*60)

		assert.Empty(t, checker.Check(w, []*job.Job{lastWeek}, wednesday, 180, nil, nil))
	})

	t.Run("default duration applies to undeclared jobs", func(t *testing.T) {
		w := newTestWorker(t)
		require.NoError(t, w.SetMaxWeeklyHours(3))
		undeclared := newActiveJob(t, "Shift", wednesday.Add(-24*time.Hour), 0)

		// 2h default committed + 2h default proposed = 4 > 3.
		warnings := checker.Check(w, []*job.Job{undeclared}, wednesday, 0, nil, nil)
		require.Len(t, warnings, 1)

		details, ok := warnings[0].Details.(services.MaxHoursDetails)
		require.True(t, ok)
		assert.InDelta(t, 4, details.TotalHours, 0.001)
	})

	t.Run("explicit week bounds override derivation", func(t *testing.T) {
		w := newTestWorker(t)
		require.NoError(t, w.SetMaxWeeklyHours(40))

		// With explicit bounds pushed a week back, the committed job falls
		// outside the window and only the proposal counts.
		committed := newActiveJob(t, "Shift", wednesday.Add(-24*time.Hour), 39*60)
		weekStart := time.Date(2025, time.May, 25, 0, 0, 0, 0, time.UTC)
		weekEnd := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

		assert.Empty(t, checker.Check(w, []*job.Job{committed}, wednesday, 180, &weekStart, &weekEnd))
	})
}
