package availability

import (
	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// GroupRuns схлопывает выбранные слоты в минимальное число запросов на бронирование.
//
// hourly: слоты в одном прогоне, если slot[i].From == slot[i-1].To
// daily: слоты в одном прогоне, если день slot[i] ровно на один календарный день позже slot[i-1]
//
// Пустой выбор - пустой результат, запросов не будет
func GroupRuns(mode domain.SlotMode, deskID string, selected []domain.TimeSlot) []domain.BookingRequest {
	if len(selected) == 0 {
		return []domain.BookingRequest{}
	}

	sorted := sortedByFrom(selected)
	adjacent := hourlyAdjacent
	if mode == domain.SlotModeDaily {
		adjacent = dailyAdjacent
	}

	requests := make([]domain.BookingRequest, 0, len(sorted))
	first, last := sorted[0], sorted[0]

	for _, slot := range sorted[1:] {
		if adjacent(last, slot) {
			last = slot
			continue
		}
		requests = append(requests, domain.BookingRequest{DeskID: deskID, DateFrom: first.From, DateTo: last.To})
		first, last = slot, slot
	}

	return append(requests, domain.BookingRequest{DeskID: deskID, DateFrom: first.From, DateTo: last.To})
}

func hourlyAdjacent(prev, next domain.TimeSlot) bool {
	return next.From.Equal(prev.To)
}

func dailyAdjacent(prev, next domain.TimeSlot) bool {
	expected := domain.DayOf(prev.From).AddDate(0, 0, 1)
	return domain.DayOf(next.From).Equal(expected)
}
