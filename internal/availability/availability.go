package availability

import "github.com/m04kA/SMC-DeskService/internal/domain"

// IsAvailable проверяет, что кандидат не пересекается ни с одним забронированным интервалом.
// Пересечение строгое: слот, который заканчивается ровно там, где начинается бронь, свободен
func IsAvailable(candidate domain.TimeSlot, reserved []domain.TimeSlot) bool {
	for _, r := range reserved {
		if candidate.Overlaps(r) {
			return false
		}
	}
	return true
}

// FirstConflict возвращает первый забронированный интервал, пересекающийся с кандидатом
func FirstConflict(candidate domain.TimeSlot, reserved []domain.TimeSlot) (domain.TimeSlot, bool) {
	for _, r := range reserved {
		if candidate.Overlaps(r) {
			return r, true
		}
	}
	return domain.TimeSlot{}, false
}
