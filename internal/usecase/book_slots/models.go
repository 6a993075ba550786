package book_slots

import "github.com/m04kA/SMC-DeskService/internal/domain"

// Request модель запроса на бронирование выбранных слотов сетки
type Request struct {
	UserID string            // ID пользователя из токена
	DeskID string            // ID стола
	Mode   domain.SlotMode   // Режим сетки, из которой выбраны слоты
	Slots  []domain.TimeSlot // Выбранные слоты в любом порядке
}

// Response модель ответа
type Response struct {
	Requests     []domain.BookingRequest // Непрерывные прогоны, в которые схлопнулся выбор
	Reservations []domain.Reservation    // Созданные брони
}
