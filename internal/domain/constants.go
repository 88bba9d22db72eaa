package domain

// Business validation constants
const (
	MinPasswordLength = 8
	MinPhoneDigits    = 10
	MaxPhoneDigits    = 15
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, освобождающих диапазон дат
// Используется при проверке доступности автомобиля
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
