package create_reservation

import "errors"

var (
	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("create_reservation: desk not found")

	// ErrInvalidTimeRange возвращается, когда конец интервала не позже начала
	ErrInvalidTimeRange = errors.New("create_reservation: dateTo must be after dateFrom")

	// ErrOutsideWorkingHours возвращается, когда интервал выходит за окно 05:00-21:00
	ErrOutsideWorkingHours = errors.New("create_reservation: interval is outside working hours")

	// ErrReservationInPast возвращается, когда интервал уже закончился
	ErrReservationInPast = errors.New("create_reservation: interval is in the past")

	// ErrDeskAlreadyReserved возвращается, когда стол занят на пересекающийся период
	ErrDeskAlreadyReserved = errors.New("create_reservation: desk is already reserved for this period")

	// ErrUserAlreadyReserved возвращается, когда у пользователя уже есть другой стол на этот период
	ErrUserAlreadyReserved = errors.New("create_reservation: user already has a reservation for this period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
