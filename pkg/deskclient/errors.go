package deskclient

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeskService/internal/domain"
	"github.com/m04kA/SMC-DeskService/pkg/timefmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("deskclient: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("deskclient: invalid response")
)

// APIError ответ сервиса с кодом не 2xx
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("deskclient: status %d: %s", e.StatusCode, e.Message)
}

// IsConflict сообщает, что слот уже занят (409)
func (e *APIError) IsConflict() bool {
	return e.StatusCode == 409
}

// RunOutcome результат бронирования одного непрерывного интервала
type RunOutcome struct {
	Request      domain.BookingRequest
	Reservations []domain.Reservation
	Err          error
}

// BatchError единая ошибка пакетного бронирования
// Runs содержит исход каждого интервала, CompensationErr - ошибки отката успешных интервалов
type BatchError struct {
	Runs            []RunOutcome
	CompensationErr error
}

func (e *BatchError) Error() string {
	failed := e.Failed()
	parts := make([]string, 0, len(failed))
	for _, run := range failed {
		parts = append(parts, fmt.Sprintf("[%s - %s]: %v",
			run.Request.DateFrom.Format(timefmt.Layout), run.Request.DateTo.Format(timefmt.Layout), run.Err))
	}

	msg := fmt.Sprintf("deskclient: %d of %d runs failed: %s", len(failed), len(e.Runs), strings.Join(parts, "; "))
	if e.CompensationErr != nil {
		msg += fmt.Sprintf("; compensation failed: %v", e.CompensationErr)
	}
	return msg
}

// Unwrap даёт errors.Is/As доступ к ошибкам отдельных интервалов
func (e *BatchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Runs)+1)
	for _, run := range e.Runs {
		if run.Err != nil {
			errs = append(errs, run.Err)
		}
	}
	if e.CompensationErr != nil {
		errs = append(errs, e.CompensationErr)
	}
	return errs
}

// Failed возвращает только неуспешные интервалы
func (e *BatchError) Failed() []RunOutcome {
	var failed []RunOutcome
	for _, run := range e.Runs {
		if run.Err != nil {
			failed = append(failed, run)
		}
	}
	return failed
}
