package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// CreateCarRequest запрос на создание автомобиля
type CreateCarRequest struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         *int    `json:"year,omitempty"`
	Category     string  `json:"category"` // колонка type
	Transmission *string `json:"transmission,omitempty"`
	FuelType     *string `json:"fuelType,omitempty"` // колонка fuel
	Seats        *int    `json:"seats,omitempty"`
	DailyPrice   float64 `json:"dailyPrice"` // колонка price_per_day
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	City         *string `json:"city,omitempty"`
	District     *string `json:"district,omitempty"`
}

// ToDomainCar конвертирует запрос в domain модель
// Имя автомобиля собирается из марки и модели, новый автомобиль
// по умолчанию доступен для аренды
func (r *CreateCarRequest) ToDomainCar() *domain.Car {
	return &domain.Car{
		Name:         strings.TrimSpace(r.Brand + " " + r.Model),
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		Type:         r.Category,
		Seats:        r.Seats,
		Transmission: r.Transmission,
		Fuel:         r.FuelType,
		PricePerDay:  r.DailyPrice,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		City:         r.City,
		District:     r.District,
		Available:    true,
	}
}

// UpdateCarRequest частичное обновление автомобиля
// nil поле - значение не меняется
type UpdateCarRequest struct {
	Brand        *string  `json:"brand,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Year         *int     `json:"year,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Transmission *string  `json:"transmission,omitempty"`
	FuelType     *string  `json:"fuelType,omitempty"`
	Seats        *int     `json:"seats,omitempty"`
	DailyPrice   *float64 `json:"dailyPrice,omitempty"`
	Description  *string  `json:"description,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	City         *string  `json:"city,omitempty"`
	District     *string  `json:"district,omitempty"`
}

// IsEmpty returns true if the request carries no fields
func (r *UpdateCarRequest) IsEmpty() bool {
	return r.Brand == nil && r.Model == nil && r.Year == nil && r.Category == nil &&
		r.Transmission == nil && r.FuelType == nil && r.Seats == nil &&
		r.DailyPrice == nil && r.Description == nil && r.ImageURL == nil &&
		r.City == nil && r.District == nil
}

// SetAvailabilityRequest запрос на изменение доступности
// Available == nil - флаг переключается на противоположный
type SetAvailabilityRequest struct {
	Available *bool `json:"available,omitempty"`
}

// Response модели

// CarResponse ответ с данными автомобиля
type CarResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         *int    `json:"year,omitempty"`
	Type         string  `json:"type"`
	Seats        *int    `json:"seats,omitempty"`
	Transmission *string `json:"transmission,omitempty"`
	Fuel         *string `json:"fuel,omitempty"`
	PricePerDay  float64 `json:"pricePerDay"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	City         *string `json:"city,omitempty"`
	District     *string `json:"district,omitempty"`
	Available    bool    `json:"available"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CarListResponse ответ со списком автомобилей
type CarListResponse struct {
	Cars []CarResponse `json:"cars"`
}

// Методы конвертации

// FromDomainCar конвертирует domain модель в DTO
func FromDomainCar(c *domain.Car) *CarResponse {
	if c == nil {
		return nil
	}

	return &CarResponse{
		ID:           c.ID,
		Name:         c.Name,
		Brand:        c.Brand,
		Model:        c.Model,
		Year:         c.Year,
		Type:         c.Type,
		Seats:        c.Seats,
		Transmission: c.Transmission,
		Fuel:         c.Fuel,
		PricePerDay:  c.PricePerDay,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		City:         c.City,
		District:     c.District,
		Available:    c.Available,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromDomainCarList конвертирует список domain моделей в DTO
func FromDomainCarList(cars []*domain.Car) *CarListResponse {
	resp := &CarListResponse{
		Cars: make([]CarResponse, 0, len(cars)),
	}

	for _, car := range cars {
		if carResp := FromDomainCar(car); carResp != nil {
			resp.Cars = append(resp.Cars, *carResp)
		}
	}

	return resp
}
