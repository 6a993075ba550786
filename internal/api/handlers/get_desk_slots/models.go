package get_desk_slots

import (
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
	getDeskSlots "github.com/m04kA/SMC-DeskService/internal/usecase/get_desk_slots"
	"github.com/m04kA/SMC-DeskService/pkg/timefmt"
)

// DeskSlotsResponse HTTP response model
type DeskSlotsResponse struct {
	DeskID   string `json:"deskId"`
	DeskName string `json:"deskName"`
	Mode     string `json:"mode"`
	Slots    []Slot `json:"slots"`
}

// Slot слот сетки
type Slot struct {
	DateFrom    time.Time `json:"dateFrom"`
	DateTo      time.Time `json:"dateTo"`
	IsAvailable bool      `json:"isAvailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDeskSlots.Response) *DeskSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			DateFrom:    slot.From,
			DateTo:      slot.To,
			IsAvailable: slot.IsAvailable,
		}
	}

	return &DeskSlotsResponse{
		DeskID:   resp.DeskID,
		DeskName: resp.DeskName,
		Mode:     string(resp.Mode),
		Slots:    slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(userID, deskID, dateStr, modeStr string, loc *time.Location) (*getDeskSlots.Request, error) {
	date, err := timefmt.ParseDate(dateStr, loc)
	if err != nil {
		return nil, err
	}

	mode, err := domain.ParseSlotMode(modeStr)
	if err != nil {
		return nil, err
	}

	return &getDeskSlots.Request{
		UserID: userID,
		DeskID: deskID,
		Date:   date,
		Mode:   mode,
	}, nil
}
