package cars

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("car not found")

	// ErrCarHasBookings возвращается при попытке удалить автомобиль,
	// на который ссылаются бронирования
	ErrCarHasBookings = errors.New("car has bookings")

	// ErrNoFieldsToUpdate возвращается при пустом частичном обновлении
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
