package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		input []domain.TimeSlot
		want  []domain.TimeSlot
	}{
		{
			name:  "empty",
			input: nil,
			want:  []domain.TimeSlot{},
		},
		{
			name:  "touching intervals merge",
			input: []domain.TimeSlot{slot(10, 9, 10), slot(10, 10, 11)},
			want:  []domain.TimeSlot{slot(10, 9, 11)},
		},
		{
			name:  "overlapping and unsorted",
			input: []domain.TimeSlot{slot(10, 13, 15), slot(10, 9, 12), slot(10, 11, 14)},
			want:  []domain.TimeSlot{slot(10, 9, 15)},
		},
		{
			name:  "gap kept",
			input: []domain.TimeSlot{slot(10, 14, 15), slot(10, 9, 10)},
			want:  []domain.TimeSlot{slot(10, 9, 10), slot(10, 14, 15)},
		},
		{
			name:  "contained interval absorbed",
			input: []domain.TimeSlot{slot(10, 8, 20), slot(10, 10, 11)},
			want:  []domain.TimeSlot{slot(10, 8, 20)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.input)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.True(t, tt.want[i].Equal(got[i]), "interval %d: want %v, got %v", i, tt.want[i], got[i])
			}
		})
	}
}

func TestMerge_Properties(t *testing.T) {
	input := []domain.TimeSlot{slot(10, 15, 16), slot(10, 8, 9), slot(10, 9, 10), slot(10, 12, 14), slot(10, 13, 15)}
	original := append([]domain.TimeSlot(nil), input...)

	merged := Merge(input)

	assert.Equal(t, original, input, "input must not be modified")
	for i := 1; i < len(merged); i++ {
		assert.True(t, merged[i-1].To.Before(merged[i].From), "merged intervals must be separated by a gap")
	}

	again := Merge(merged)
	require.Len(t, again, len(merged))
	for i := range merged {
		assert.True(t, merged[i].Equal(again[i]))
	}
}
