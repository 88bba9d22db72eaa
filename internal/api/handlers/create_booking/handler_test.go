package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if authenticated {
		req = req.WithContext(middleware.WithUserID(req.Context(), 1))
	}

	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	t.Parallel()

	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:          101,
			UserID:      1,
			CarID:       7,
			StartDate:   time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC),
			TotalDays:   3,
			TotalAmount: 150,
			Status:      "pending",
		},
	}

	rec := doRequest(t, uc, `{"carId":7,"startDate":"2024-05-01","endDate":"2024-05-03"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "2024-05-01", resp.StartDate)
	assert.Equal(t, "2024-05-03", resp.EndDate)
	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, 150.0, resp.TotalAmount)

	// ID пользователя берется из контекста, не из тела запроса
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.UserID)
}

func TestHandle_Unauthenticated(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeUseCase{}, `{"carId":7,"startDate":"2024-05-01","endDate":"2024-05-03"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeUseCase{}, `{not json`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeUseCase{}, `{"carId":7,"startDate":"01.05.2024","endDate":"2024-05-03"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"car not found", createBooking.ErrCarNotFound, http.StatusNotFound},
		{"car not available", createBooking.ErrCarNotAvailable, http.StatusConflict},
		{"invalid date range", createBooking.ErrInvalidDateRange, http.StatusBadRequest},
		{"internal error", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err},
				`{"carId":7,"startDate":"2024-05-01","endDate":"2024-05-03"}`, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
