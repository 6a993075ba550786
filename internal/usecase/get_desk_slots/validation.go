package get_desk_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DeskID == "" {
		return fmt.Errorf("%w: deskID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Mode != domain.SlotModeHourly && req.Mode != domain.SlotModeDaily {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	return nil
}

// gridWindow возвращает окно [from, to), которое покрывает сетка режима
func gridWindow(mode domain.SlotMode, date time.Time) (time.Time, time.Time) {
	if mode == domain.SlotModeDaily {
		y, m, _ := date.Date()
		from := time.Date(y, m, 1, 0, 0, 0, 0, date.Location())
		return from, from.AddDate(0, 1, 0)
	}

	from := domain.DayOf(date)
	return from, from.AddDate(0, 0, 1)
}
