package book_slots

import "errors"

var (
	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("book_slots: desk not found")

	// ErrNoSlotsSelected возвращается, когда не выбрано ни одного слота
	ErrNoSlotsSelected = errors.New("book_slots: no slots selected")

	// ErrInvalidSlot возвращается, когда слот не совпадает с сеткой выбранного режима
	ErrInvalidSlot = errors.New("book_slots: slot does not belong to the grid")

	// ErrSlotInPast возвращается, когда выбранный слот уже закончился
	ErrSlotInPast = errors.New("book_slots: slot is in the past")

	// ErrSlotNotAvailable возвращается, когда стол уже занят на один из слотов
	ErrSlotNotAvailable = errors.New("book_slots: slot is not available")

	// ErrUserAlreadyReserved возвращается, когда у пользователя уже есть другой стол на этот период
	ErrUserAlreadyReserved = errors.New("book_slots: user already has a reservation for this period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slots: internal error")
)
