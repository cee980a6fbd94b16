package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
)

func TestAvailabilityChecker(t *testing.T) {
	checker := services.NewAvailabilityChecker()

	// 2025-06-02 is a Monday.
	monday9 := time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC)

	t.Run("no windows on the weekday warns", func(t *testing.T) {
		w := newTestWorker(t)
		addWindow(t, w, time.Tuesday, "09:00", "17:00")

		warnings := checker.Check(w, monday9)
		require.Len(t, warnings, 1)
		assert.Equal(t, services.WarningAvailability, warnings[0].Type)

		details, ok := warnings[0].Details.(services.AvailabilityDetails)
		require.True(t, ok)
		assert.Equal(t, time.Monday, details.Day)
		assert.Empty(t, details.Windows)
	})

	t.Run("time inside a window is clean", func(t *testing.T) {
		w := newTestWorker(t)
		addWindow(t, w, time.Monday, "09:00", "17:00")

		assert.Empty(t, checker.Check(w, monday9))
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		w := newTestWorker(t)
		addWindow(t, w, time.Monday, "09:00", "17:00")

		atStart := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
		atEnd := time.Date(2025, time.June, 2, 17, 0, 0, 0, time.UTC)

		assert.Empty(t, checker.Check(w, atStart))
		assert.Empty(t, checker.Check(w, atEnd))
	})

	t.Run("time outside every window warns with declared windows", func(t *testing.T) {
		w := newTestWorker(t)
		addWindow(t, w, time.Monday, "09:00", "12:00")
		addWindow(t, w, time.Monday, "14:00", "17:00")

		at := time.Date(2025, time.June, 2, 13, 0, 0, 0, time.UTC)
		warnings := checker.Check(w, at)
		require.Len(t, warnings, 1)
		assert.Equal(t, services.WarningAvailability, warnings[0].Type)

		details, ok := warnings[0].Details.(services.AvailabilityDetails)
		require.True(t, ok)
		assert.Equal(t, "13:00", details.AttemptedTime.String())
		assert.Equal(t, []string{"Mon 09:00-12:00", "Mon 14:00-17:00"}, details.Windows)
	})

	t.Run("approved leave warns independently of windows", func(t *testing.T) {
		w := newTestWorker(t)
		addWindow(t, w, time.Monday, "09:00", "17:00")
		approveLeave(t, w,
			time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC))

		warnings := checker.Check(w, monday9)
		require.Len(t, warnings, 1)
		assert.Equal(t, services.WarningOnLeave, warnings[0].Type)

		details, ok := warnings[0].Details.(services.OnLeaveDetails)
		require.True(t, ok)
		require.Len(t, details.Ranges, 1)
		assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), details.Ranges[0].StartDate)
		assert.Equal(t, time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC), details.Ranges[0].EndDate)
	})

	t.Run("window and leave warnings both fire", func(t *testing.T) {
		w := newTestWorker(t)
		approveLeave(t, w,
			time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC))

		warnings := checker.Check(w, monday9)
		require.Len(t, warnings, 2)
		assert.Equal(t, services.WarningAvailability, warnings[0].Type)
		assert.Equal(t, services.WarningOnLeave, warnings[1].Type)
	})

	t.Run("pending leave has no effect", func(t *testing.T) {
		w := newTestWorker(t)
		addWindow(t, w, time.Monday, "09:00", "17:00")
		_, err := w.RequestLeave(kernel.NewUUID(),
			time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.Empty(t, checker.Check(w, monday9))
	})
}
