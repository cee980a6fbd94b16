package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/location"
	"fieldops/internal/core/domain/model/worker"
)

func newTestWorker(t *testing.T, skills ...string) *worker.Worker {
	t.Helper()
	w, err := worker.NewWorker(kernel.NewUUID(), "Dana", skills)
	require.NoError(t, err)
	return w
}

func addWindow(t *testing.T, w *worker.Worker, day time.Weekday, start, end string) {
	t.Helper()
	s, err := kernel.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := kernel.ParseTimeOfDay(end)
	require.NoError(t, err)
	window, err := worker.NewAvailabilityWindow(day, s, e)
	require.NoError(t, err)
	w.AddAvailabilityWindow(window)
}

func approveLeave(t *testing.T, w *worker.Worker, startDate, endDate time.Time) {
	t.Helper()
	leave, err := w.RequestLeave(kernel.NewUUID(), startDate, endDate)
	require.NoError(t, err)
	require.NoError(t, w.ApproveLeave(leave.ID()))
}

func newTestLocation(t *testing.T, requirements ...location.SkillRequirement) *location.Location {
	t.Helper()
	l, err := location.NewLocation(kernel.NewUUID(), "Office 12", "1 Main St", requirements)
	require.NoError(t, err)
	return l
}

func requirement(t *testing.T, skill string, required bool) location.SkillRequirement {
	t.Helper()
	r, err := location.NewSkillRequirement(skill, required)
	require.NoError(t, err)
	return r
}

// newActiveJob creates a scheduled job, which starts in planned status and so
// counts toward overlap and workload checks.
func newActiveJob(t *testing.T, title string, at time.Time, durationMinutes int) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), title, "", kernel.NewUUID(), &at, durationMinutes)
	require.NoError(t, err)
	return j
}

func newDraftJob(t *testing.T, title string) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), title, "", kernel.NewUUID(), nil, 0)
	require.NoError(t, err)
	return j
}
