package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings"
)

type fakeService struct {
	err error

	gotBookingID int64
	gotUserID    int64
}

func (f *fakeService) Cancel(_ context.Context, bookingID int64, userID int64) error {
	f.gotBookingID = bookingID
	f.gotUserID = userID
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, path string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", handler.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, nil)
	if authenticated {
		req = req.WithContext(middleware.WithUserID(req.Context(), 1))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	rec := doRequest(t, svc, "/api/v1/bookings/10/cancel", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10), svc.gotBookingID)
	assert.Equal(t, int64(1), svc.gotUserID)
}

func TestHandle_Unauthenticated(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeService{}, "/api/v1/bookings/10/cancel", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeService{}, "/api/v1/bookings/abc/cancel", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NotFound(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeService{err: bookings.ErrBookingNotFound}, "/api/v1/bookings/999/cancel", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_AccessDenied(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeService{err: bookings.ErrAccessDenied}, "/api/v1/bookings/10/cancel", true)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeService{err: bookings.ErrInternal}, "/api/v1/bookings/10/cancel", true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
