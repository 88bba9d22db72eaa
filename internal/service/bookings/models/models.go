package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Response модели

// UserBookingResponse бронирование пользователя с данными автомобиля
type UserBookingResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	CarID       int64   `json:"carId"`
	StartDate   string  `json:"startDate"` // "2025-10-15"
	EndDate     string  `json:"endDate"`   // "2025-10-17"
	TotalDays   int     `json:"totalDays"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`

	// Данные автомобиля для отображения истории
	CarName     string  `json:"carName"`
	CarBrand    string  `json:"carBrand"`
	CarImageURL *string `json:"carImageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []UserBookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainUserBooking конвертирует domain модель в DTO
func FromDomainUserBooking(b *domain.UserBooking) *UserBookingResponse {
	if b == nil {
		return nil
	}

	return &UserBookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		CarID:       b.CarID,
		StartDate:   b.StartDate.Format(domain.DateFormat),
		EndDate:     b.EndDate.Format(domain.DateFormat),
		TotalDays:   b.TotalDays,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
		CarName:     b.CarName,
		CarBrand:    b.CarBrand,
		CarImageURL: b.CarImageURL,
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainUserBookingList конвертирует список domain моделей в DTO
func FromDomainUserBookingList(bookings []*domain.UserBooking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]UserBookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainUserBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
