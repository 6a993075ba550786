package availability

import (
	"fmt"
	"slices"
	"strings"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// GroupReservations группирует бронирования пользователя по столу и календарному дню.
//
// Ключ группы - (deskID, день начала слота). Слоты внутри группы дедуплицируются по (From, To)
// и сортируются по началу, ID бронирований дедуплицируются. Группы сортируются по дате,
// при равенстве - по deskID, поэтому результат не зависит от порядка входа.
// deskNames - имена столов, для отсутствующих используется "Desk #<id>"
func GroupReservations(reservations []domain.Reservation, deskNames map[string]string) []domain.GroupedReservation {
	groups := make(map[string]*domain.GroupedReservation)

	for _, reservation := range reservations {
		for _, slot := range reservation.ReservedSlots {
			day := domain.DayOf(slot.From)
			key := reservation.DeskID + "_" + day.Format("2006-01-02")

			group, ok := groups[key]
			if !ok {
				group = &domain.GroupedReservation{
					DeskID:         reservation.DeskID,
					DeskName:       deskName(deskNames, reservation.DeskID),
					ReservationIDs: []string{},
					ReservedSlots:  []domain.TimeSlot{},
					Date:           day,
				}
				groups[key] = group
			}

			if !slices.Contains(group.ReservationIDs, reservation.ID) {
				group.ReservationIDs = append(group.ReservationIDs, reservation.ID)
			}

			if !slices.ContainsFunc(group.ReservedSlots, slot.Equal) {
				group.ReservedSlots = append(group.ReservedSlots, slot)
			}
		}
	}

	result := make([]domain.GroupedReservation, 0, len(groups))
	for _, group := range groups {
		group.ReservedSlots = sortedByFrom(group.ReservedSlots)
		slices.Sort(group.ReservationIDs)
		result = append(result, *group)
	}

	slices.SortFunc(result, func(a, b domain.GroupedReservation) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.DeskID, b.DeskID)
	})

	return result
}

func deskName(names map[string]string, deskID string) string {
	if name, ok := names[deskID]; ok && name != "" {
		return name
	}
	return fmt.Sprintf(domain.DeskNameFallbackFormat, deskID)
}
