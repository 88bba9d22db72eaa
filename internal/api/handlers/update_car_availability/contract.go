package update_car_availability

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/cars/models"
)

type CarService interface {
	SetAvailability(ctx context.Context, id int64, req *models.SetAvailabilityRequest) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
