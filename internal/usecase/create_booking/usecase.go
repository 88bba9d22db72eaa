package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	carRepo     CarRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции: два конкурентных запроса на пересекающиеся даты не могут
// оба пройти проверку. Строка автомобиля читается с FOR UPDATE, поэтому
// бронирования одного автомобиля сериализуются между собой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, car=%d, period=%s..%s",
		req.UserID, req.CarID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 2. Операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем автомобиль (под блокировкой FOR UPDATE)
		car, err := uc.carRepo.GetByID(txCtx, req.CarID)
		if err != nil {
			if errors.Is(err, carRepo.ErrCarNotFound) {
				uc.logger.Warn("CreateBooking: car id=%d not found", req.CarID)
				return ErrCarNotFound
			}
			uc.logger.Error("CreateBooking: failed to get car id=%d: %v", req.CarID, err)
			return fmt.Errorf("%w: failed to get car: %w", ErrInternal, err)
		}

		// 2.2. Автомобиль со снятым флагом available недоступен
		// независимо от диапазона дат
		if !car.Available {
			uc.logger.Warn("CreateBooking: car id=%d is marked unavailable", req.CarID)
			return ErrCarNotAvailable
		}

		// 2.3. Проверяем пересечения с активными бронированиями
		overlapping, err := uc.bookingRepo.GetActiveOverlapping(txCtx, req.CarID, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %w", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: car id=%d has %d overlapping booking(s) for %s..%s",
				req.CarID, len(overlapping),
				req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
			return ErrCarNotAvailable
		}

		// 2.4. Считаем количество дней и стоимость
		// Оба конца диапазона считаются арендованными днями
		totalDays := domain.RentalDays(req.StartDate, req.EndDate)
		totalAmount := float64(totalDays) * car.PricePerDay

		// 2.5. Сохраняем бронирование
		booking := &domain.Booking{
			UserID:      req.UserID,
			CarID:       req.CarID,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			TotalDays:   totalDays,
			TotalAmount: totalAmount,
			Status:      domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, days=%d, amount=%.2f",
		result.ID, result.TotalDays, result.TotalAmount)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		CarID:       result.CarID,
		StartDate:   result.StartDate,
		EndDate:     result.EndDate,
		TotalDays:   result.TotalDays,
		TotalAmount: result.TotalAmount,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
	}, nil
}
