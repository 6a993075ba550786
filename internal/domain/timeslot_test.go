package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 7, hour, min, 0, 0, time.UTC)
}

func TestNewTimeSlot(t *testing.T) {
	slot, err := NewTimeSlot(at(9, 0), at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, slot.Duration())

	_, err = NewTimeSlot(at(10, 0), at(9, 0))
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = NewTimeSlot(at(10, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestTimeSlot_Overlaps(t *testing.T) {
	existing := MustTimeSlot(at(11, 0), at(12, 0))

	assert.False(t, MustTimeSlot(at(10, 0), at(11, 0)).Overlaps(existing))
	assert.True(t, MustTimeSlot(at(11, 0), at(12, 0)).Overlaps(existing))
	assert.True(t, MustTimeSlot(at(11, 30), at(13, 0)).Overlaps(existing))
	assert.False(t, MustTimeSlot(at(12, 0), at(13, 0)).Overlaps(existing))
}

func TestParseSlotMode(t *testing.T) {
	mode, err := ParseSlotMode("daily")
	require.NoError(t, err)
	assert.Equal(t, SlotModeDaily, mode)

	mode, err = ParseSlotMode("")
	require.NoError(t, err)
	assert.Equal(t, SlotModeHourly, mode)

	_, err = ParseSlotMode("weekly")
	assert.Error(t, err)
}
