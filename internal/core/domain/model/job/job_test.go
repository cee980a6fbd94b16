package job_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/model/kernel"
)

func ptrTime(t time.Time) *time.Time {
	return &t
}

func newTestJob(t *testing.T, scheduledAt *time.Time) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), "Deep clean", "Full apartment clean",
		kernel.NewUUID(), scheduledAt, 90)
	require.NoError(t, err)
	return j
}

func newTestTemplate(t *testing.T, pattern job.Pattern, scheduledAt *time.Time) *job.Job {
	t.Helper()
	tmpl, err := job.NewTemplate(kernel.NewUUID(), "Weekly maintenance", "",
		kernel.NewUUID(), scheduledAt, 60, pattern)
	require.NoError(t, err)
	return tmpl
}

func TestNewJob(t *testing.T) {
	t.Run("unscheduled job starts in draft", func(t *testing.T) {
		j := newTestJob(t, nil)

		assert.Equal(t, job.Draft, j.Status())
		assert.Nil(t, j.ScheduledAt())
		assert.False(t, j.IsRecurring())
		assert.False(t, j.IsTemplate())
		assert.Equal(t, job.PatternNone, j.Pattern())
		assert.NoError(t, j.Validate())
	})

	t.Run("scheduled job starts in planned", func(t *testing.T) {
		at := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
		j := newTestJob(t, ptrTime(at))

		assert.Equal(t, job.Planned, j.Status())
		require.NotNil(t, j.ScheduledAt())
		assert.True(t, at.Equal(*j.ScheduledAt()))
	})

	t.Run("requires title", func(t *testing.T) {
		_, err := job.NewJob(kernel.NewUUID(), "", "", kernel.NewUUID(), nil, 0)
		assert.Error(t, err)
	})

	t.Run("requires valid location ID", func(t *testing.T) {
		_, err := job.NewJob(kernel.NewUUID(), "Deep clean", "", kernel.UUID{}, nil, 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative duration", func(t *testing.T) {
		_, err := job.NewJob(kernel.NewUUID(), "Deep clean", "", kernel.NewUUID(), nil, -15)
		assert.Error(t, err)
	})

	t.Run("zero duration means unset", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), "Deep clean", "", kernel.NewUUID(), nil, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, j.DurationMinutes())
	})
}

func TestNewTemplate(t *testing.T) {
	t.Run("template stays in draft even when scheduled", func(t *testing.T) {
		at := time.Date(2025, time.June, 2, 10, 30, 0, 0, time.UTC)
		tmpl := newTestTemplate(t, job.PatternWeekly, ptrTime(at))

		assert.Equal(t, job.Draft, tmpl.Status())
		assert.True(t, tmpl.IsRecurring())
		assert.True(t, tmpl.IsTemplate())
		assert.Equal(t, job.PatternWeekly, tmpl.Pattern())
		assert.Nil(t, tmpl.ParentTemplateID())
	})

	t.Run("requires a recurring pattern", func(t *testing.T) {
		_, err := job.NewTemplate(kernel.NewUUID(), "Weekly maintenance", "",
			kernel.NewUUID(), nil, 60, job.PatternNone)
		assert.Error(t, err)
	})
}

func TestJobValidate(t *testing.T) {
	var j job.Job
	assert.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)

	var nilJob *job.Job
	assert.ErrorIs(t, nilJob.Validate(), job.ErrJobIsNotConstructed)
}

func TestJobIsEqual(t *testing.T) {
	id := kernel.NewUUID()
	locID := kernel.NewUUID()

	a, err := job.NewJob(id, "Deep clean", "", locID, nil, 0)
	require.NoError(t, err)
	b, err := job.NewJob(id, "Other title", "", locID, nil, 0)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(newTestJob(t, nil)))
	assert.False(t, a.IsEqual(nil))
}

func TestJobAssign(t *testing.T) {
	at := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

	t.Run("assigning a planned job moves it to assigned", func(t *testing.T) {
		j := newTestJob(t, ptrTime(at))
		workerID := kernel.NewUUID()

		require.NoError(t, j.Assign(workerID))

		assert.Equal(t, job.Assigned, j.Status())
		assert.True(t, j.IsAssignedTo(workerID))
		assert.Len(t, j.Assignees(), 1)
	})

	t.Run("reassignment adds a second worker", func(t *testing.T) {
		j := newTestJob(t, ptrTime(at))
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, j.Assign(first))
		require.NoError(t, j.Assign(second))

		assert.Equal(t, job.Assigned, j.Status())
		assert.Equal(t, []kernel.UUID{first, second}, j.Assignees())
	})

	t.Run("assigning the same worker twice is a no-op", func(t *testing.T) {
		j := newTestJob(t, ptrTime(at))
		workerID := kernel.NewUUID()

		require.NoError(t, j.Assign(workerID))
		require.NoError(t, j.Assign(workerID))

		assert.Len(t, j.Assignees(), 1)
	})

	t.Run("cannot assign a draft job", func(t *testing.T) {
		j := newTestJob(t, nil)
		assert.Error(t, j.Assign(kernel.NewUUID()))
	})

	t.Run("rejects invalid worker ID", func(t *testing.T) {
		j := newTestJob(t, ptrTime(at))
		assert.Error(t, j.Assign(kernel.UUID{}))
	})

	t.Run("template keeps draft status on assignment", func(t *testing.T) {
		tmpl := newTestTemplate(t, job.PatternDaily, nil)
		workerID := kernel.NewUUID()

		require.NoError(t, tmpl.Assign(workerID))

		assert.Equal(t, job.Draft, tmpl.Status())
		assert.True(t, tmpl.IsAssignedTo(workerID))
	})
}

func TestJobWorkflow(t *testing.T) {
	at := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

	t.Run("full approve path", func(t *testing.T) {
		j := newTestJob(t, ptrTime(at))

		require.NoError(t, j.Assign(kernel.NewUUID()))
		require.NoError(t, j.Start())
		require.NoError(t, j.Submit())
		require.NoError(t, j.Approve())
		require.NoError(t, j.Archive())

		assert.Equal(t, job.Archived, j.Status())
	})

	t.Run("reject path", func(t *testing.T) {
		j := newTestJob(t, ptrTime(at))

		require.NoError(t, j.Assign(kernel.NewUUID()))
		require.NoError(t, j.Start())
		require.NoError(t, j.Submit())
		require.NoError(t, j.Reject())
		require.NoError(t, j.Archive())

		assert.Equal(t, job.Archived, j.Status())
	})

	t.Run("scheduling a draft job plans it", func(t *testing.T) {
		j := newTestJob(t, nil)

		require.NoError(t, j.Schedule(at))

		assert.Equal(t, job.Planned, j.Status())
		require.NotNil(t, j.ScheduledAt())
		assert.True(t, at.Equal(*j.ScheduledAt()))
	})
}

func TestJobChecklist(t *testing.T) {
	j := newTestJob(t, nil)

	require.NoError(t, j.AddChecklistItem(kernel.NewUUID(), "Wipe windows"))
	require.NoError(t, j.AddChecklistItem(kernel.NewUUID(), "Vacuum floors"))

	items := j.Checklist()
	require.Len(t, items, 2)
	assert.Equal(t, "Wipe windows", items[0].Text())
	assert.Equal(t, 0, items[0].Position())
	assert.Equal(t, "Vacuum floors", items[1].Text())
	assert.Equal(t, 1, items[1].Position())
	assert.False(t, items[0].Done())

	t.Run("complete marks an item done", func(t *testing.T) {
		require.NoError(t, j.CompleteChecklistItem(items[0].ID()))

		updated := j.Checklist()
		assert.True(t, updated[0].Done())
		assert.False(t, updated[1].Done())
	})

	t.Run("completing an unknown item fails", func(t *testing.T) {
		assert.ErrorIs(t, j.CompleteChecklistItem(kernel.NewUUID()), job.ErrChecklistItemNotFound)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		assert.Error(t, j.AddChecklistItem(kernel.NewUUID(), ""))
	})
}

func TestJobNewInstance(t *testing.T) {
	scheduled := time.Date(2025, time.June, 2, 10, 30, 0, 0, time.UTC)
	occurrence := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)

	newTemplateWithExtras := func(t *testing.T) *job.Job {
		t.Helper()
		tmpl := newTestTemplate(t, job.PatternWeekly, ptrTime(scheduled))
		require.NoError(t, tmpl.Assign(kernel.NewUUID()))
		require.NoError(t, tmpl.AddChecklistItem(kernel.NewUUID(), "Check supplies"))
		require.NoError(t, tmpl.AddChecklistItem(kernel.NewUUID(), "Lock up"))
		require.NoError(t, tmpl.CompleteChecklistItem(tmpl.Checklist()[0].ID()))
		return tmpl
	}

	t.Run("copies template fields onto the instance", func(t *testing.T) {
		tmpl := newTemplateWithExtras(t)
		instanceID := kernel.NewUUID()

		instance, err := tmpl.NewInstance(instanceID, occurrence)
		require.NoError(t, err)

		assert.True(t, instance.ID().IsEqual(instanceID))
		assert.Equal(t, tmpl.Title(), instance.Title())
		assert.Equal(t, tmpl.Description(), instance.Description())
		assert.True(t, instance.LocationID().IsEqual(tmpl.LocationID()))
		assert.Equal(t, tmpl.DurationMinutes(), instance.DurationMinutes())
		assert.Equal(t, tmpl.Assignees(), instance.Assignees())
	})

	t.Run("instance is a draft non-template pointing at its parent", func(t *testing.T) {
		tmpl := newTemplateWithExtras(t)

		instance, err := tmpl.NewInstance(kernel.NewUUID(), occurrence)
		require.NoError(t, err)

		assert.Equal(t, job.Draft, instance.Status())
		assert.False(t, instance.IsRecurring())
		assert.False(t, instance.IsTemplate())
		require.NotNil(t, instance.ParentTemplateID())
		assert.True(t, instance.ParentTemplateID().IsEqual(tmpl.ID()))
		require.NotNil(t, instance.OccurrenceDate())
		assert.True(t, occurrence.Equal(*instance.OccurrenceDate()))
	})

	t.Run("schedules the instance at the template time of day", func(t *testing.T) {
		tmpl := newTemplateWithExtras(t)

		instance, err := tmpl.NewInstance(kernel.NewUUID(), occurrence)
		require.NoError(t, err)

		require.NotNil(t, instance.ScheduledAt())
		expected := time.Date(2025, time.June, 9, 10, 30, 0, 0, time.UTC)
		assert.True(t, expected.Equal(*instance.ScheduledAt()))
	})

	t.Run("unscheduled template yields midnight start", func(t *testing.T) {
		tmpl := newTestTemplate(t, job.PatternDaily, nil)

		instance, err := tmpl.NewInstance(kernel.NewUUID(), occurrence)
		require.NoError(t, err)

		require.NotNil(t, instance.ScheduledAt())
		assert.True(t, occurrence.Equal(*instance.ScheduledAt()))
	})

	t.Run("checklist items get fresh IDs and reset done state", func(t *testing.T) {
		tmpl := newTemplateWithExtras(t)

		instance, err := tmpl.NewInstance(kernel.NewUUID(), occurrence)
		require.NoError(t, err)

		tmplItems := tmpl.Checklist()
		instItems := instance.Checklist()
		require.Len(t, instItems, len(tmplItems))
		for i, item := range instItems {
			assert.Equal(t, tmplItems[i].Text(), item.Text())
			assert.Equal(t, tmplItems[i].Position(), item.Position())
			assert.False(t, item.ID().IsEqual(tmplItems[i].ID()))
			assert.False(t, item.Done())
		}
	})

	t.Run("regular jobs cannot generate instances", func(t *testing.T) {
		j := newTestJob(t, nil)
		_, err := j.NewInstance(kernel.NewUUID(), occurrence)
		assert.ErrorIs(t, err, job.ErrNotATemplate)
	})

	t.Run("generated instances cannot generate further instances", func(t *testing.T) {
		tmpl := newTemplateWithExtras(t)
		instance, err := tmpl.NewInstance(kernel.NewUUID(), occurrence)
		require.NoError(t, err)

		_, err = instance.NewInstance(kernel.NewUUID(), occurrence)
		assert.ErrorIs(t, err, job.ErrNotATemplate)
	})
}

func TestRestoreJob(t *testing.T) {
	id := kernel.NewUUID()
	locID := kernel.NewUUID()
	parentID := kernel.NewUUID()
	at := time.Date(2025, time.June, 9, 10, 30, 0, 0, time.UTC)
	occurrence := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	workerID := kernel.NewUUID()

	item, err := job.RestoreChecklistItem(kernel.NewUUID(), 0, "Check supplies", true)
	require.NoError(t, err)

	j, err := job.RestoreJob(id, "Weekly maintenance", "desc", locID, ptrTime(at), 60,
		job.Assigned, []kernel.UUID{workerID}, false, job.PatternNone,
		&parentID, ptrTime(occurrence), []job.ChecklistItem{item})
	require.NoError(t, err)

	assert.True(t, j.ID().IsEqual(id))
	assert.Equal(t, job.Assigned, j.Status())
	assert.True(t, j.IsAssignedTo(workerID))
	require.NotNil(t, j.ParentTemplateID())
	assert.True(t, j.ParentTemplateID().IsEqual(parentID))
	require.NotNil(t, j.OccurrenceDate())
	assert.True(t, occurrence.Equal(*j.OccurrenceDate()))
	require.Len(t, j.Checklist(), 1)
	assert.True(t, j.Checklist()[0].Done())
	assert.NoError(t, j.Validate())

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := job.RestoreJob(id, "Weekly maintenance", "", locID, nil, 0,
			job.StatusUnknown, nil, false, job.PatternNone, nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("recurring restore requires a pattern", func(t *testing.T) {
		_, err := job.RestoreJob(id, "Weekly maintenance", "", locID, nil, 0,
			job.Draft, nil, true, job.PatternNone, nil, nil, nil)
		assert.Error(t, err)
	})
}
