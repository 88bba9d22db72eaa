package create_booking

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("create_booking: car not found")

	// ErrCarNotAvailable возвращается, когда автомобиль недоступен
	// на запрошенный диапазон дат (флаг available или пересечение
	// с активным бронированием)
	ErrCarNotAvailable = errors.New("create_booking: car is not available for the selected dates")

	// ErrInvalidDateRange возвращается, когда дата окончания раньше даты начала
	ErrInvalidDateRange = errors.New("create_booking: end date is before start date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
