package availability

import (
	"slices"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// Merge сливает пересекающиеся и граничащие интервалы в минимальный отсортированный набор.
// В отличие от IsAvailable, касание считается слиянием: [9:00,10:00) + [10:00,11:00) = [9:00,11:00)
func Merge(slots []domain.TimeSlot) []domain.TimeSlot {
	if len(slots) == 0 {
		return []domain.TimeSlot{}
	}

	sorted := sortedByFrom(slots)

	merged := make([]domain.TimeSlot, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		if !next.From.After(current.To) {
			if next.To.After(current.To) {
				current.To = next.To
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}

// sortedByFrom возвращает отсортированную по началу копию
func sortedByFrom(slots []domain.TimeSlot) []domain.TimeSlot {
	sorted := slices.Clone(slots)
	slices.SortStableFunc(sorted, func(a, b domain.TimeSlot) int {
		return a.From.Compare(b.From)
	})
	return sorted
}
