package create_car

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/cars"
	"github.com/m04kA/SMC-RentalService/internal/service/cars/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не заполнены обязательные поля: brand, model, category, dailyPrice"
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

// Handle POST /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("POST /cars - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cars - Failed to create car: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars - Car created successfully: car_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
