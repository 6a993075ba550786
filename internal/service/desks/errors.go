package desks

import "errors"

var (
	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("desks: desk not found")

	// ErrDeskNameTaken возвращается, когда имя стола уже занято
	ErrDeskNameTaken = errors.New("desks: desk name already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("desks: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("desks: internal error")
)
