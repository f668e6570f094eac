package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	"github.com/m04kA/UDP-ReservationService/internal/service/reservations/models"
)

type fakeReservationsService struct {
	req  *models.CancelReservationRequest
	resp *models.ReservationResponse
	err  error
}

func (f *fakeReservationsService) Cancel(_ context.Context, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	f.req = req
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newCancelRequest(t *testing.T, body *strings.Reader) *http.Request {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest("POST", "/api/v1/reservations/42/cancel", nil)
	} else {
		req = httptest.NewRequest("POST", "/api/v1/reservations/42/cancel", body)
	}
	req = req.WithContext(middleware.WithUserID(req.Context(), 1))
	return mux.SetURLVars(req, map[string]string{"id": "42"})
}

// TestHandle_WithoutBody проверяет отмену без тела запроса:
// причина опциональна, отсутствующее тело не считается ошибкой
func TestHandle_WithoutBody(t *testing.T) {
	svc := &fakeReservationsService{resp: &models.ReservationResponse{ID: 42, Status: "cancelada"}}
	h := NewHandler(svc, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newCancelRequest(t, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req)
	assert.Equal(t, int64(42), svc.req.ReservationID)
	assert.Equal(t, int64(1), svc.req.ActorID)
	assert.Nil(t, svc.req.Reason)
}

// TestHandle_WithReason проверяет передачу причины из тела запроса
func TestHandle_WithReason(t *testing.T) {
	svc := &fakeReservationsService{resp: &models.ReservationResponse{ID: 42, Status: "cancelada"}}
	h := NewHandler(svc, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newCancelRequest(t, strings.NewReader(`{"reason":"ya no lo necesito"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req)
	require.NotNil(t, svc.req.Reason)
	assert.Equal(t, "ya no lo necesito", *svc.req.Reason)
}

func TestHandle_MalformedBody(t *testing.T) {
	svc := &fakeReservationsService{}
	h := NewHandler(svc, noopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newCancelRequest(t, strings.NewReader("{broken")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.req)
}
