package cars

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-RentalService/internal/service/cars/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// Service сервис для работы с каталогом автомобилей
type Service struct {
	carRepo     CarRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(carRepo CarRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		carRepo:     carRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List получает список автомобилей с фильтрацией и сортировкой
func (s *Service) List(ctx context.Context, filter domain.CarFilter) (*models.CarListResponse, error) {
	cars, err := s.carRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d cars", len(cars))
	return models.FromDomainCarList(cars), nil
}

// GetByID получает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CarResponse, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("GetByID: car id=%d not found", id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("GetByID: repository error for car id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCar(car), nil
}

// Create создает новый автомобиль
func (s *Service) Create(ctx context.Context, req *models.CreateCarRequest) (*models.CarResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.carRepo.Create(ctx, req.ToDomainCar())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created car id=%d (%s)", created.ID, created.Name)
	return models.FromDomainCar(created), nil
}

// Update частично обновляет автомобиль: меняются только переданные поля
// При изменении марки или модели имя пересобирается; недостающая часть
// берется из текущей записи
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCarRequest) error {
	if req.IsEmpty() {
		s.logger.Warn("Update: no fields to update for car id=%d", id)
		return ErrNoFieldsToUpdate
	}

	update := domain.CarUpdate{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Type:         req.Category,
		Seats:        req.Seats,
		Transmission: req.Transmission,
		Fuel:         req.FuelType,
		PricePerDay:  req.DailyPrice,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		City:         req.City,
		District:     req.District,
	}

	// Пересобираем имя, если пришла марка или модель
	if req.Brand != nil || req.Model != nil {
		name, err := s.composeName(ctx, id, req.Brand, req.Model)
		if err != nil {
			return err
		}
		if name != "" {
			update.Name = ptr.Ptr(name)
		}
	}

	if err := s.carRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Update: car id=%d not found", id)
			return ErrCarNotFound
		}
		s.logger.Error("Update: repository error for car id=%d: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated car id=%d", id)
	return nil
}

// SetAvailability меняет доступность автомобиля
// Если значение не передано, флаг переключается на противоположный
// Возвращает установленное значение
func (s *Service) SetAvailability(ctx context.Context, id int64, req *models.SetAvailabilityRequest) (bool, error) {
	available := false

	if req.Available != nil {
		available = *req.Available
	} else {
		car, err := s.carRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, carRepo.ErrCarNotFound) {
				s.logger.Warn("SetAvailability: car id=%d not found", id)
				return false, ErrCarNotFound
			}
			s.logger.Error("SetAvailability: repository error for car id=%d: %v", id, err)
			return false, fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
		}
		available = !car.Available
	}

	if err := s.carRepo.SetAvailability(ctx, id, available); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("SetAvailability: car id=%d not found", id)
			return false, ErrCarNotFound
		}
		s.logger.Error("SetAvailability: repository error for car id=%d: %v", id, err)
		return false, fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetAvailability: car id=%d available=%t", id, available)
	return available, nil
}

// Delete удаляет автомобиль из каталога
// Удаление блокируется, пока на автомобиль ссылаются бронирования:
// история бронирований не удаляется, поэтому автомобиль с историей
// следует выводить из каталога через флаг available
func (s *Service) Delete(ctx context.Context, id int64) error {
	hasActive, err := s.bookingRepo.HasActiveByCarID(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to check bookings for car id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to check bookings: %v", ErrInternal, err)
	}
	if hasActive {
		s.logger.Warn("Delete: car id=%d has active bookings", id)
		return ErrCarHasBookings
	}

	if err := s.carRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, carRepo.ErrCarNotFound):
			s.logger.Warn("Delete: car id=%d not found", id)
			return ErrCarNotFound
		case errors.Is(err, carRepo.ErrCarHasBookings):
			// Отмененные бронирования тоже держат FK
			s.logger.Warn("Delete: car id=%d is referenced by booking history", id)
			return ErrCarHasBookings
		default:
			s.logger.Error("Delete: repository error for car id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: successfully deleted car id=%d", id)
	return nil
}

// composeName собирает имя "<brand> <model>", дополняя недостающую часть
// из текущей записи
func (s *Service) composeName(ctx context.Context, id int64, brand, model *string) (string, error) {
	if brand == nil || model == nil {
		car, err := s.carRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, carRepo.ErrCarNotFound) {
				s.logger.Warn("composeName: car id=%d not found", id)
				return "", ErrCarNotFound
			}
			s.logger.Error("composeName: repository error for car id=%d: %v", id, err)
			return "", fmt.Errorf("%w: composeName - repository error: %v", ErrInternal, err)
		}

		if brand == nil {
			brand = ptr.Ptr(car.Brand)
		}
		if model == nil {
			model = ptr.Ptr(car.Model)
		}
	}

	return strings.TrimSpace(*brand + " " + *model), nil
}

// validateCreateRequest проверяет обязательные поля создания автомобиля
func validateCreateRequest(req *models.CreateCarRequest) error {
	if req.Brand == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidInput)
	}
	if req.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidInput)
	}
	if req.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if req.DailyPrice <= 0 {
		return fmt.Errorf("%w: dailyPrice must be positive", ErrInvalidInput)
	}
	return nil
}
