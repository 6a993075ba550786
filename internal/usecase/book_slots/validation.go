package book_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/availability"
	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// validateRequest валидирует запрос и возвращает выбор без повторов
func validateRequest(req *Request) ([]domain.TimeSlot, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.DeskID == "" {
		return nil, fmt.Errorf("%w: deskID is required", ErrInvalidInput)
	}

	if req.Mode != domain.SlotModeHourly && req.Mode != domain.SlotModeDaily {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	if len(req.Slots) == 0 {
		return nil, ErrNoSlotsSelected
	}

	if len(req.Slots) > domain.MaxSlotsPerBatch {
		return nil, fmt.Errorf("%w: at most %d slots per call", ErrInvalidInput, domain.MaxSlotsPerBatch)
	}

	unique := make([]domain.TimeSlot, 0, len(req.Slots))
	for _, slot := range req.Slots {
		if !availability.IsGridSlot(req.Mode, slot) {
			return nil, fmt.Errorf("%w: %s mode, %s - %s", ErrInvalidSlot, req.Mode,
				slot.From.Format(time.RFC3339), slot.To.Format(time.RFC3339))
		}
		if !containsSlot(unique, slot) {
			unique = append(unique, slot)
		}
	}

	return unique, nil
}

func containsSlot(slots []domain.TimeSlot, slot domain.TimeSlot) bool {
	for _, s := range slots {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}
