package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// Фейки для зависимостей use case

type fakeCarRepo struct {
	car *domain.Car
	err error
}

func (f *fakeCarRepo) GetByID(_ context.Context, _ int64) (*domain.Car, error) {
	return f.car, f.err
}

type fakeBookingRepo struct {
	overlapping []*domain.Booking
	created     *domain.Booking
	createErr   error
	nextID      int64
}

func (f *fakeBookingRepo) GetActiveOverlapping(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Booking, error) {
	return f.overlapping, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func availableCar(pricePerDay float64) *domain.Car {
	return &domain.Car{
		ID:          7,
		Name:        "Toyota Camry",
		Brand:       "Toyota",
		Model:       "Camry",
		Type:        "Sedan",
		PricePerDay: pricePerDay,
		Available:   true,
	}
}

func newUseCase(cars *fakeCarRepo, bookings *fakeBookingRepo) *UseCase {
	return NewUseCase(bookings, cars, fakeTxManager{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	t.Parallel()

	bookings := &fakeBookingRepo{nextID: 101}
	uc := newUseCase(&fakeCarRepo{car: availableCar(50)}, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		CarID:     7,
		StartDate: date(2024, time.May, 1),
		EndDate:   date(2024, time.May, 3),
	})
	require.NoError(t, err)

	// Оба конца диапазона оплачиваются: 1, 2 и 3 мая
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, 150.0, resp.TotalAmount)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusPending, bookings.created.Status)
}

func TestExecute_SameDayRental(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeCarRepo{car: availableCar(80)}, &fakeBookingRepo{nextID: 1})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		CarID:     7,
		StartDate: date(2024, time.May, 1),
		EndDate:   date(2024, time.May, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TotalDays)
	assert.Equal(t, 80.0, resp.TotalAmount)
}

func TestExecute_CarNotFound(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeCarRepo{err: carRepo.ErrCarNotFound}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		CarID:     999,
		StartDate: date(2024, time.May, 1),
		EndDate:   date(2024, time.May, 3),
	})
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestExecute_CarMarkedUnavailable(t *testing.T) {
	t.Parallel()

	car := availableCar(50)
	car.Available = false
	uc := newUseCase(&fakeCarRepo{car: car}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		CarID:     7,
		StartDate: date(2024, time.May, 1),
		EndDate:   date(2024, time.May, 3),
	})
	assert.ErrorIs(t, err, ErrCarNotAvailable)
}

func TestExecute_OverlappingBooking(t *testing.T) {
	t.Parallel()

	bookings := &fakeBookingRepo{
		overlapping: []*domain.Booking{
			{
				ID:        55,
				CarID:     7,
				StartDate: date(2024, time.May, 2),
				EndDate:   date(2024, time.May, 5),
				Status:    domain.StatusPending,
			},
		},
	}
	uc := newUseCase(&fakeCarRepo{car: availableCar(50)}, bookings)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		CarID:     7,
		StartDate: date(2024, time.May, 1),
		EndDate:   date(2024, time.May, 3),
	})
	assert.ErrorIs(t, err, ErrCarNotAvailable)
	assert.Nil(t, bookings.created)
}

func TestExecute_CancelledBookingFreesRange(t *testing.T) {
	t.Parallel()

	// Репозиторий возвращает только активные бронирования, отмененные
	// в выборку не попадают
	bookings := &fakeBookingRepo{overlapping: nil, nextID: 2}
	uc := newUseCase(&fakeCarRepo{car: availableCar(50)}, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		CarID:     7,
		StartDate: date(2024, time.May, 1),
		EndDate:   date(2024, time.May, 3),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalDays)
}

func TestExecute_EndDateBeforeStartDate(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeCarRepo{car: availableCar(50)}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		CarID:     7,
		StartDate: date(2024, time.May, 3),
		EndDate:   date(2024, time.May, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_Validation(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeCarRepo{car: availableCar(50)}, &fakeBookingRepo{})

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "missing user",
			req:  &Request{CarID: 7, StartDate: date(2024, time.May, 1), EndDate: date(2024, time.May, 3)},
		},
		{
			name: "missing car",
			req:  &Request{UserID: 1, StartDate: date(2024, time.May, 1), EndDate: date(2024, time.May, 3)},
		},
		{
			name: "missing start date",
			req:  &Request{UserID: 1, CarID: 7, EndDate: date(2024, time.May, 3)},
		},
		{
			name: "missing end date",
			req:  &Request{UserID: 1, CarID: 7, StartDate: date(2024, time.May, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_StorageErrorKeepsCause(t *testing.T) {
	t.Parallel()

	// Конфликт сериализации из запроса внутри транзакции должен доходить
	// до менеджера транзакций: *pq.Error остается в цепочке ошибки
	bookings := &fakeBookingRepo{
		createErr: fmt.Errorf("%w: Create - execute insert: %w",
			bookingRepo.ErrExecQuery, &pq.Error{Code: "40001"}),
	}
	uc := newUseCase(&fakeCarRepo{car: availableCar(50)}, bookings)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		CarID:     7,
		StartDate: date(2024, time.May, 1),
		EndDate:   date(2024, time.May, 3),
	})
	require.ErrorIs(t, err, ErrInternal)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, "40001", string(pqErr.Code))
}

func TestExecute_PriceFixedAtCreation(t *testing.T) {
	t.Parallel()

	car := availableCar(50)
	car.Description = ptr.Ptr("price may change later")
	bookings := &fakeBookingRepo{nextID: 3}
	uc := newUseCase(&fakeCarRepo{car: car}, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		CarID:     7,
		StartDate: date(2024, time.May, 1),
		EndDate:   date(2024, time.May, 2),
	})
	require.NoError(t, err)

	// Стоимость зафиксирована в момент создания
	car.PricePerDay = 500
	assert.Equal(t, 100.0, resp.TotalAmount)
	assert.Equal(t, 100.0, bookings.created.TotalAmount)
}
