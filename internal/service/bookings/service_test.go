package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	byID        map[int64]*domain.Booking
	userHistory []*domain.UserBooking
	updated     map[int64]domain.BookingStatus
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		byID:    make(map[int64]*domain.Booking),
		updated: make(map[int64]domain.BookingStatus),
	}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64) ([]*domain.UserBooking, error) {
	return f.userHistory, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updated[id] = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCancel_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeBookingRepo()
	repo.byID[10] = &domain.Booking{ID: 10, UserID: 1, Status: domain.StatusPending}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.updated[10])
}

func TestCancel_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeBookingRepo(), nopLogger{})

	err := svc.Cancel(context.Background(), 999, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_NotOwner(t *testing.T) {
	t.Parallel()

	repo := newFakeBookingRepo()
	repo.byID[10] = &domain.Booking{ID: 10, UserID: 1, Status: domain.StatusPending}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, 2)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.updated)
}

func TestCancel_AlreadyCancelledIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := newFakeBookingRepo()
	repo.byID[10] = &domain.Booking{ID: 10, UserID: 1, Status: domain.StatusCancelled}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, 1)
	require.NoError(t, err)

	// Статус не перезаписывается повторно
	assert.Empty(t, repo.updated)
}

func TestGetUserBookings(t *testing.T) {
	t.Parallel()

	imageURL := "https://cdn.example.com/camry.jpg"
	repo := newFakeBookingRepo()
	repo.userHistory = []*domain.UserBooking{
		{
			Booking: domain.Booking{
				ID:          2,
				UserID:      1,
				CarID:       7,
				StartDate:   date(2024, time.June, 1),
				EndDate:     date(2024, time.June, 3),
				TotalDays:   3,
				TotalAmount: 150,
				Status:      domain.StatusPending,
			},
			CarName:     "Toyota Camry",
			CarBrand:    "Toyota",
			CarImageURL: &imageURL,
		},
		{
			Booking: domain.Booking{
				ID:        1,
				UserID:    1,
				CarID:     8,
				StartDate: date(2024, time.May, 1),
				EndDate:   date(2024, time.May, 1),
				TotalDays: 1,
				Status:    domain.StatusCancelled,
			},
			CarName:  "Kia Rio",
			CarBrand: "Kia",
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	first := resp.Bookings[0]
	assert.Equal(t, int64(2), first.ID)
	assert.Equal(t, "2024-06-01", first.StartDate)
	assert.Equal(t, "2024-06-03", first.EndDate)
	assert.Equal(t, "Toyota Camry", first.CarName)
	require.NotNil(t, first.CarImageURL)
	assert.Equal(t, imageURL, *first.CarImageURL)

	// Отмененные бронирования остаются в истории
	assert.Equal(t, string(domain.StatusCancelled), resp.Bookings[1].Status)
	assert.Nil(t, resp.Bookings[1].CarImageURL)
}

func TestGetUserBookings_Empty(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeBookingRepo(), nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}
