package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/core/domain/model/job"
	"fieldops/internal/core/domain/services"
)

func TestAssignmentValidator(t *testing.T) {
	validator := services.NewAssignmentValidator(services.DefaultConfig())

	// 2025-06-02 is a Monday.
	monday10 := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

	t.Run("clean assignment yields no warnings", func(t *testing.T) {
		w := newTestWorker(t, "deep-clean")
		addWindow(t, w, time.Monday, "09:00", "17:00")
		l := newTestLocation(t, requirement(t, "deep-clean", true))

		result := validator.Validate(services.ValidationInput{
			Worker:          w,
			Location:        l,
			ProposedAt:      monday10,
			DurationMinutes: 60,
		})

		assert.True(t, result.Valid)
		assert.True(t, result.CanAssign)
		assert.Empty(t, result.Warnings)
	})

	t.Run("warnings concatenate in checker order", func(t *testing.T) {
		w := newTestWorker(t, "window-cleaning")
		require.NoError(t, w.SetMaxWeeklyHours(40))
		approveLeave(t, w,
			time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC))
		l := newTestLocation(t, requirement(t, "deep-clean", true))

		conflicting := newActiveJob(t, "Morning shift", monday10.Add(-time.Hour), 120)
		committed := []*job.Job{
			newActiveJob(t, "Monday shift", time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC), 19*60),
			newActiveJob(t, "Tuesday shift", time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC), 19*60),
		}

		result := validator.Validate(services.ValidationInput{
			Worker:            w,
			Location:          l,
			ProposedAt:        monday10,
			DurationMinutes:   180,
			OverlapCandidates: []*job.Job{conflicting},
			WeekJobs:          committed,
		})

		require.Len(t, result.Warnings, 5)
		assert.Equal(t, services.WarningSkillMismatch, result.Warnings[0].Type)
		assert.Equal(t, services.WarningAvailability, result.Warnings[1].Type)
		assert.Equal(t, services.WarningOnLeave, result.Warnings[2].Type)
		assert.Equal(t, services.WarningOverlap, result.Warnings[3].Type)
		assert.Equal(t, services.WarningMaxHours, result.Warnings[4].Type)
	})

	t.Run("validation never blocks", func(t *testing.T) {
		w := newTestWorker(t, "window-cleaning")
		l := newTestLocation(t,
			requirement(t, "deep-clean", true),
			requirement(t, "pet-friendly", false))

		result := validator.Validate(services.ValidationInput{
			Worker:          w,
			Location:        l,
			ProposedAt:      monday10,
			DurationMinutes: 60,
		})

		// Skill mismatches and the missing-windows warning all surface, yet
		// the assignment may still proceed.
		assert.True(t, result.Valid)
		assert.True(t, result.CanAssign)
		require.Len(t, result.Warnings, 3)
		for _, warning := range result.Warnings {
			assert.Equal(t, services.SeverityWarning, warning.Severity)
		}
	})
}
