package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrDeskNotFound возвращается при нарушении внешнего ключа на стол
	ErrDeskNotFound = errors.New("reservation.repository: desk not found")

	// ErrDeskAlreadyReserved возвращается при нарушении ограничения one_reservation_per_desk_per_period
	ErrDeskAlreadyReserved = errors.New("reservation.repository: desk already reserved for this period")

	// ErrUserAlreadyReserved возвращается при нарушении ограничения one_desk_per_user_per_period
	ErrUserAlreadyReserved = errors.New("reservation.repository: user already has a reservation for this period")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
