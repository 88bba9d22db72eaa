package update_car

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/cars/models"
)

type CarService interface {
	Update(ctx context.Context, id int64, req *models.UpdateCarRequest) error
	GetByID(ctx context.Context, id int64) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
