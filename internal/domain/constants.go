package domain

// Рабочее окно дня, по которому определяется "стол занят целиком"
const (
	WorkDayStartHour = 8
	WorkDayEndHour   = 21
)

// Сетка почасовых слотов: [8:00, 21:00) с шагом в час
const (
	HourlyFirstHour = 8
	HourlyLastHour  = 21 // не включительно
)

// Окно посуточного слота [05:00, 18:00)
const (
	DailyStartHour = 5
	DailyEndHour   = 18
)

// Допустимые часы бронирования: любой интервал должен лежать в [05:00, 21:00]
const (
	BookableFromHour = DailyStartHour
	BookableToHour   = HourlyLastHour
)

// Ограничения на входные данные
const (
	MaxDeskNameLength      = 100
	MaxSlotsPerBatch       = 62
	MaxReservationsPerCall = 100
)

// DeskNameFallbackFormat имя стола, если стол не найден (удалён)
const DeskNameFallbackFormat = "Desk #%s"
