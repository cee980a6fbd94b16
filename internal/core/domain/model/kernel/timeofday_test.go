package kernel_test

import (
	"testing"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeOfDay(t *testing.T) {
	t.Run("creates valid time of day", func(t *testing.T) {
		tod, err := kernel.NewTimeOfDay(9, 30)

		require.NoError(t, err)
		assert.Equal(t, 9, tod.Hour())
		assert.Equal(t, 30, tod.Minute())
		assert.Equal(t, 570, tod.Minutes())
		assert.Equal(t, "09:30", tod.String())
	})

	t.Run("midnight is valid", func(t *testing.T) {
		tod, err := kernel.NewTimeOfDay(0, 0)

		require.NoError(t, err)
		assert.Equal(t, "00:00", tod.String())
	})

	t.Run("rejects out of range hour", func(t *testing.T) {
		_, err := kernel.NewTimeOfDay(24, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects out of range minute", func(t *testing.T) {
		_, err := kernel.NewTimeOfDay(12, 60)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("parses 15:04 format", func(t *testing.T) {
		tod, err := kernel.ParseTimeOfDay("17:45")

		require.NoError(t, err)
		assert.Equal(t, 17, tod.Hour())
		assert.Equal(t, 45, tod.Minute())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := kernel.ParseTimeOfDay("25:99")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTimeOfDayFromTime(t *testing.T) {
	ts := time.Date(2025, time.March, 3, 14, 15, 59, 0, time.UTC)

	tod := kernel.TimeOfDayFromTime(ts)

	assert.Equal(t, 14, tod.Hour())
	assert.Equal(t, 15, tod.Minute())
}

func TestTimeOfDay_Ordering(t *testing.T) {
	earlier, _ := kernel.NewTimeOfDay(8, 0)
	later, _ := kernel.NewTimeOfDay(16, 30)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, earlier.Before(earlier))
}
