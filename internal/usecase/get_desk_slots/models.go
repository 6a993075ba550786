package get_desk_slots

import (
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// Request модель запроса сетки слотов стола
type Request struct {
	UserID string          // ID пользователя (для логирования, не влияет на результат)
	DeskID string          // ID стола
	Date   time.Time       // День (hourly) или любой день месяца (daily) в зоне бронирования
	Mode   domain.SlotMode // Гранулярность сетки
}

// Response модель ответа с сеткой слотов
type Response struct {
	DeskID   string
	DeskName string
	Mode     domain.SlotMode
	Slots    []domain.Slot
}
