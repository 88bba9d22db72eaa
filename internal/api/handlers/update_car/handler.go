package update_car

import (
	"errors"
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
	msgNoFieldsToUpdate   = "не передано ни одного поля для обновления"
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

// Handle PUT /api/v1/cars/{carId}
// Частичное обновление: меняются только переданные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /cars/{carId} - Invalid car ID: %s", vars["carId"])
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req models.UpdateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cars/{carId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), carID, &req); err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("PUT /cars/{carId} - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, cars.ErrNoFieldsToUpdate):
			h.logger.Warn("PUT /cars/{carId} - No fields to update: car_id=%d", carID)
			handlers.RespondBadRequest(w, msgNoFieldsToUpdate)

		default:
			h.logger.Error("PUT /cars/{carId} - Failed to update car: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Возвращаем обновленный автомобиль
	result, err := h.service.GetByID(r.Context(), carID)
	if err != nil {
		h.logger.Error("PUT /cars/{carId} - Failed to fetch updated car: car_id=%d, error=%v", carID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /cars/{carId} - Car updated successfully: car_id=%d", carID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
