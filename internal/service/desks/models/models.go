package models

import (
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// DeskInput стол во входном файле загрузки
type DeskInput struct {
	Name string `json:"name"`
}

// Zone зона офиса со списком столов
type Zone struct {
	Name  string      `json:"name"`
	Desks []DeskInput `json:"desks"`
}

// LoadRequest запрос на массовую загрузку столов
// Принимает плоский список или список зон, столы зон добавляются после плоского списка
type LoadRequest struct {
	Desks []DeskInput `json:"desks,omitempty"`
	Zones []Zone      `json:"zones,omitempty"`
}

// Names возвращает имена всех столов запроса в порядке появления
func (r *LoadRequest) Names() []string {
	names := make([]string, 0, len(r.Desks))
	for _, d := range r.Desks {
		names = append(names, d.Name)
	}
	for _, z := range r.Zones {
		for _, d := range z.Desks {
			names = append(names, d.Name)
		}
	}
	return names
}

// TimeSlotResponse забронированный интервал
type TimeSlotResponse struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
}

// DeskResponse стол с состоянием на сегодня
type DeskResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	ReservedSlots []TimeSlotResponse `json:"reservedSlots"`
	Reserved      bool               `json:"reserved"`
	ReservedByMe  bool               `json:"reservedByMe"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// FromDomainDesk конвертирует доменную модель в ответ
func FromDomainDesk(d domain.Desk) DeskResponse {
	return DeskResponse{
		ID:            d.ID,
		Name:          d.Name,
		ReservedSlots: FromDomainSlots(d.ReservedSlots),
		Reserved:      d.Reserved,
		ReservedByMe:  d.ReservedByMe,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// FromDomainDesks конвертирует список столов
func FromDomainDesks(desks []domain.Desk) []DeskResponse {
	result := make([]DeskResponse, 0, len(desks))
	for _, d := range desks {
		result = append(result, FromDomainDesk(d))
	}
	return result
}

// FromDomainSlots конвертирует интервалы
func FromDomainSlots(slots []domain.TimeSlot) []TimeSlotResponse {
	result := make([]TimeSlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, TimeSlotResponse{DateFrom: s.From, DateTo: s.To})
	}
	return result
}
