package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/availability"
	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.DeskID == "" {
		return fmt.Errorf("%w: deskID is required", ErrInvalidInput)
	}

	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}

	if !req.DateTo.After(req.DateFrom) {
		return ErrInvalidTimeRange
	}

	// Лимит дней проверяется до раскладки по дням
	if days := availability.DaySpan(req.DateFrom, req.DateTo); days > domain.MaxSlotsPerBatch {
		return fmt.Errorf("%w: interval spans %d days, at most %d per call", ErrInvalidInput, days, domain.MaxSlotsPerBatch)
	}

	return nil
}

// validateSlots проверяет интервалы перед записью
// Интервал должен лежать в окне 05:00-21:00 дня своего начала и ещё не закончиться
func validateSlots(slots []domain.TimeSlot, now time.Time) error {
	if len(slots) == 0 {
		return fmt.Errorf("%w: nothing to reserve", ErrInvalidInput)
	}

	if len(slots) > domain.MaxSlotsPerBatch {
		return fmt.Errorf("%w: at most %d intervals per call", ErrInvalidInput, domain.MaxSlotsPerBatch)
	}

	for _, slot := range slots {
		if !slot.From.Before(slot.To) {
			return ErrInvalidTimeRange
		}

		y, m, d := slot.From.Date()
		open := time.Date(y, m, d, domain.BookableFromHour, 0, 0, 0, slot.From.Location())
		closeAt := time.Date(y, m, d, domain.BookableToHour, 0, 0, 0, slot.From.Location())

		if slot.From.Before(open) || slot.To.After(closeAt) {
			return fmt.Errorf("%w: %s - %s", ErrOutsideWorkingHours,
				slot.From.Format("15:04"), slot.To.Format("15:04"))
		}

		if !slot.To.After(now) {
			return fmt.Errorf("%w: ended at %s", ErrReservationInPast, slot.To.Format(time.RFC3339))
		}
	}

	return nil
}
