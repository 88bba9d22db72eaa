package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createBooking "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP запрос на создание бронирования
// Даты передаются строками в формате YYYY-MM-DD
type CreateBookingRequest struct {
	CarID     int64  `json:"carId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CreateBookingResponse HTTP ответ с созданным бронированием
type CreateBookingResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	CarID       int64   `json:"carId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	TotalDays   int     `json:"totalDays"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Парсит даты из строкового формата YYYY-MM-DD
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		CarID:     r.CarID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	if resp == nil {
		return nil
	}

	return &CreateBookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		CarID:       resp.CarID,
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		EndDate:     resp.EndDate.Format(domain.DateFormat),
		TotalDays:   resp.TotalDays,
		TotalAmount: resp.TotalAmount,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt,
	}
}
