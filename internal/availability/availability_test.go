package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.May, day, hour, minute, 0, 0, time.UTC)
}

func slot(day, fromHour, toHour int) domain.TimeSlot {
	return domain.MustTimeSlot(at(day, fromHour, 0), at(day, toHour, 0))
}

func TestIsAvailable(t *testing.T) {
	reserved := []domain.TimeSlot{slot(10, 10, 11)}

	tests := []struct {
		name      string
		candidate domain.TimeSlot
		want      bool
	}{
		{name: "same interval", candidate: slot(10, 10, 11), want: false},
		{name: "ends where reservation starts", candidate: slot(10, 9, 10), want: true},
		{name: "starts where reservation ends", candidate: slot(10, 11, 12), want: true},
		{name: "covers reservation", candidate: slot(10, 8, 12), want: false},
		{name: "partial overlap", candidate: domain.MustTimeSlot(at(10, 10, 30), at(10, 12, 0)), want: false},
		{name: "other day", candidate: slot(11, 10, 11), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAvailable(tt.candidate, reserved))
		})
	}

	assert.True(t, IsAvailable(slot(10, 10, 11), nil))
}

func TestFirstConflict(t *testing.T) {
	reserved := []domain.TimeSlot{slot(10, 8, 9), slot(10, 10, 12)}

	conflict, ok := FirstConflict(slot(10, 11, 13), reserved)
	require.True(t, ok)
	assert.True(t, conflict.Equal(slot(10, 10, 12)))

	_, ok = FirstConflict(slot(10, 9, 10), reserved)
	assert.False(t, ok)
}

func TestHourlySlots(t *testing.T) {
	t.Run("thirteen slots from 8 to 21", func(t *testing.T) {
		slots := HourlySlots(at(10, 15, 37), nil)

		require.Len(t, slots, 13)
		assert.Equal(t, at(10, 8, 0), slots[0].From)
		assert.Equal(t, at(10, 21, 0), slots[12].To)
		for i, s := range slots {
			assert.Equal(t, time.Hour, s.To.Sub(s.From))
			assert.True(t, s.IsAvailable)
			if i > 0 {
				assert.Equal(t, slots[i-1].To, s.From)
			}
		}
	})

	t.Run("reservation marks only overlapping slots", func(t *testing.T) {
		slots := HourlySlots(at(10, 0, 0), []domain.TimeSlot{slot(10, 10, 11)})

		for _, s := range slots {
			expected := s.From.Hour() != 10
			assert.Equal(t, expected, s.IsAvailable, "slot at %d:00", s.From.Hour())
		}
	})

	t.Run("half hour reservation blocks two slots", func(t *testing.T) {
		reserved := []domain.TimeSlot{domain.MustTimeSlot(at(10, 9, 30), at(10, 10, 30))}
		slots := HourlySlots(at(10, 0, 0), reserved)

		assert.False(t, slots[1].IsAvailable)
		assert.False(t, slots[2].IsAvailable)
		assert.True(t, slots[0].IsAvailable)
		assert.True(t, slots[3].IsAvailable)
	})
}

func TestDailySlots(t *testing.T) {
	t.Run("one slot per day of month", func(t *testing.T) {
		slots := DailySlots(time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC), nil)

		require.Len(t, slots, 29)
		assert.Equal(t, time.Date(2024, time.February, 1, 5, 0, 0, 0, time.UTC), slots[0].From)
		assert.Equal(t, time.Date(2024, time.February, 29, 18, 0, 0, 0, time.UTC), slots[28].To)
	})

	t.Run("reservation outside daily window keeps day available", func(t *testing.T) {
		reserved := []domain.TimeSlot{slot(3, 18, 20), slot(4, 9, 10)}
		slots := DailySlots(at(1, 0, 0), reserved)

		require.Len(t, slots, 31)
		assert.True(t, slots[2].IsAvailable)
		assert.False(t, slots[3].IsAvailable)
	})
}

func TestGenerateSlots(t *testing.T) {
	assert.Len(t, GenerateSlots(domain.SlotModeHourly, at(10, 0, 0), nil), 13)
	assert.Len(t, GenerateSlots(domain.SlotModeDaily, at(10, 0, 0), nil), 31)
}

func TestIsGridSlot(t *testing.T) {
	assert.True(t, IsGridSlot(domain.SlotModeHourly, slot(10, 9, 10)))
	assert.False(t, IsGridSlot(domain.SlotModeHourly, slot(10, 9, 11)))
	assert.False(t, IsGridSlot(domain.SlotModeHourly, slot(10, 21, 22)))
	assert.True(t, IsGridSlot(domain.SlotModeDaily, slot(10, 5, 18)))
	assert.False(t, IsGridSlot(domain.SlotModeDaily, slot(10, 8, 18)))
}
