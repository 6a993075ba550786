package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

func TestSplitByDays(t *testing.T) {
	t.Run("single day unchanged", func(t *testing.T) {
		got, err := SplitByDays(at(10, 9, 0), at(10, 12, 0))

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].Equal(slot(10, 9, 12)))
	})

	t.Run("three days keep the time window", func(t *testing.T) {
		got, err := SplitByDays(at(3, 5, 0), at(5, 18, 0))

		require.NoError(t, err)
		require.Len(t, got, 3)
		for i, day := range []int{3, 4, 5} {
			assert.True(t, got[i].Equal(slot(day, 5, 18)), "day %d", day)
		}
	})

	t.Run("reversed range", func(t *testing.T) {
		_, err := SplitByDays(at(10, 12, 0), at(10, 9, 0))

		assert.ErrorIs(t, err, domain.ErrInvalidTimeSlot)
	})

	t.Run("end time before start time across days", func(t *testing.T) {
		_, err := SplitByDays(at(10, 18, 0), at(11, 9, 0))

		assert.ErrorIs(t, err, domain.ErrInvalidTimeSlot)
	})
}

func TestDaySpan(t *testing.T) {
	assert.Equal(t, 1, DaySpan(at(10, 9, 0), at(10, 12, 0)))
	assert.Equal(t, 3, DaySpan(at(3, 5, 0), at(5, 18, 0)))
	assert.Equal(t, 0, DaySpan(at(5, 5, 0), at(3, 18, 0)))

	farFuture := time.Date(9999, time.December, 31, 18, 0, 0, 0, time.UTC)
	assert.Greater(t, DaySpan(at(1, 5, 0), farFuture), domain.MaxSlotsPerBatch)
}
