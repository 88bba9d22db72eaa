package delete_car

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/cars"
)

const (
	msgInvalidCarID   = "некорректный ID автомобиля"
	msgCarNotFound    = "автомобиль не найден"
	msgCarHasBookings = "автомобиль нельзя удалить: на него ссылаются бронирования"
	msgCarDeleted     = "автомобиль удален"
)

type Handler struct {
	service CarService
	logger  Logger
}

func NewHandler(service CarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /cars/{carId} - Invalid car ID: %s", vars["carId"])
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	if err := h.service.Delete(r.Context(), carID); err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("DELETE /cars/{carId} - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, cars.ErrCarHasBookings):
			h.logger.Warn("DELETE /cars/{carId} - Car has bookings: car_id=%d", carID)
			handlers.RespondConflict(w, msgCarHasBookings)

		default:
			h.logger.Error("DELETE /cars/{carId} - Failed to delete car: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cars/{carId} - Car deleted successfully: car_id=%d", carID)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgCarDeleted})
}
