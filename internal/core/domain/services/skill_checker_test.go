package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/core/domain/services"
)

func TestSkillChecker(t *testing.T) {
	checker := services.NewSkillChecker()

	t.Run("location without requirements never warns", func(t *testing.T) {
		w := newTestWorker(t)
		l := newTestLocation(t)

		assert.Empty(t, checker.Check(w, l))
	})

	t.Run("worker possessing every skill passes", func(t *testing.T) {
		w := newTestWorker(t, "deep-clean", "pet-friendly")
		l := newTestLocation(t,
			requirement(t, "deep-clean", true),
			requirement(t, "pet-friendly", false))

		assert.Empty(t, checker.Check(w, l))
	})

	t.Run("missing required and preferred skills warn separately", func(t *testing.T) {
		w := newTestWorker(t, "window-cleaning")
		l := newTestLocation(t,
			requirement(t, "deep-clean", true),
			requirement(t, "pet-friendly", false))

		warnings := checker.Check(w, l)
		require.Len(t, warnings, 2)

		assert.Equal(t, services.WarningSkillMismatch, warnings[0].Type)
		assert.Equal(t, services.SeverityWarning, warnings[0].Severity)
		required, ok := warnings[0].Details.(services.SkillMismatchDetails)
		require.True(t, ok)
		assert.True(t, required.Required)
		assert.Equal(t, []string{"deep-clean"}, required.MissingSkills)

		assert.Equal(t, services.WarningSkillMismatch, warnings[1].Type)
		preferred, ok := warnings[1].Details.(services.SkillMismatchDetails)
		require.True(t, ok)
		assert.False(t, preferred.Required)
		assert.Equal(t, []string{"pet-friendly"}, preferred.MissingSkills)
	})

	t.Run("only the missing subset is reported", func(t *testing.T) {
		w := newTestWorker(t, "deep-clean")
		l := newTestLocation(t,
			requirement(t, "deep-clean", true),
			requirement(t, "window-washing", true))

		warnings := checker.Check(w, l)
		require.Len(t, warnings, 1)
		details, ok := warnings[0].Details.(services.SkillMismatchDetails)
		require.True(t, ok)
		assert.Equal(t, []string{"window-washing"}, details.MissingSkills)
	})
}
