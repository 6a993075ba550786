package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

const (
	// SourceSingle бронирование одним интервалом
	SourceSingle = "single"
	// SourceBatch бронирование набором слотов
	SourceBatch = "batch"
)

// Request модель запроса на бронирование интервала
type Request struct {
	UserID   string    // ID пользователя из токена
	DeskID   string    // ID стола
	DateFrom time.Time // Начало, в зоне бронирования
	DateTo   time.Time // Конец, в зоне бронирования
}

// Response модель ответа с созданными бронированиями (по одному на день)
type Response struct {
	Reservations []domain.Reservation
}
