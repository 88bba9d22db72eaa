package cars

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	List(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	Update(ctx context.Context, id int64, update domain.CarUpdate) error
	SetAvailability(ctx context.Context, id int64, available bool) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
// Используется для проверки активных бронирований перед удалением
type BookingRepository interface {
	HasActiveByCarID(ctx context.Context, carID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
