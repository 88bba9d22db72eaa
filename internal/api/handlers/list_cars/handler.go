package list_cars

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
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

// Handle GET /api/v1/cars
// Query параметры: type (категория, "All" - без фильтра), search (подстрока
// по имени/марке/категории), sort (price_asc | price_desc | name_asc)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := domain.CarFilter{
		Type:   query.Get("type"),
		Search: query.Get("search"),
		Sort:   domain.CarSort(query.Get("sort")),
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /cars - Failed to list cars: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cars - Fetched %d cars", len(result.Cars))
	handlers.RespondJSON(w, http.StatusOK, result)
}
