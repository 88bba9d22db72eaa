package update_car_availability

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/cars"
	"github.com/m04kA/SMC-RentalService/internal/service/cars/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCarID       = "некорректный ID автомобиля"
	msgCarNotFound        = "автомобиль не найден"
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

// Handle PATCH /api/v1/cars/{carId}/availability
// Пустое тело запроса переключает флаг на противоположный
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /cars/{carId}/availability - Invalid car ID: %s", vars["carId"])
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req models.SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /cars/{carId}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	available, err := h.service.SetAvailability(r.Context(), carID, &req)
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("PATCH /cars/{carId}/availability - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("PATCH /cars/{carId}/availability - Failed to update: car_id=%d, error=%v",
				carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /cars/{carId}/availability - Availability updated: car_id=%d, available=%t",
		carID, available)
	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{ID: carID, Available: available})
}
