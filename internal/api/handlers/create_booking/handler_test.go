package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
	createBooking "github.com/Brian13b/QuicoBasquetProject/internal/usecase/create_booking"
	"github.com/Brian13b/QuicoBasquetProject/pkg/logger"
)

type useCaseStub struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

const validBody = `{"courtId":1,"sport":"basquet","date":"2024-06-03","startTime":"18:00","endTime":"19:30","paymentMethod":"transferencia"}`

func serve(h *Handler, body string, userID int64) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID > 0 {
		r = r.WithContext(middleware.WithActor(r.Context(), domain.Actor{UserID: userID, Role: domain.RoleClient}))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandler_Created(t *testing.T) {
	stub := &useCaseStub{resp: &createBooking.Response{
		ID:              5,
		CourtID:         1,
		UserID:          10,
		Sport:           "basquet",
		Date:            domain.MustDate("2024-06-03"),
		StartTime:       "18:00",
		EndTime:         "19:30",
		DurationMinutes: 90,
		Status:          "confirmada",
		PaymentStatus:   "pendiente",
		PaymentMethod:   "transferencia",
		Price:           39000,
		Payment: &createBooking.PaymentInstructions{
			BankAccount: domain.BankAccount{Alias: "quico.basquet"},
			Amount:      39000,
		},
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}}

	w := serve(NewHandler(stub, logger.Nop()), validBody, 10)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, stub.got)
	assert.Equal(t, int64(10), stub.got.UserID)
	assert.Equal(t, "19:30", stub.got.EndTime.String())

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "2024-06-03", resp.Date)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, "quico.basquet", resp.Payment.Alias)
	assert.Equal(t, 39000.0, resp.Payment.Amount)
}

func TestHandler_Errors(t *testing.T) {
	conflict := &conflicts.ConflictError{
		Kind:     conflicts.KindBooking,
		EntityID: 3,
		Date:     domain.MustDate("2024-06-03"),
		Range:    domain.MustTimeRange("18:30", "19:30"),
	}

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "conflict", body: validBody, err: fmt.Errorf("%w: %w", createBooking.ErrSlotNotAvailable, conflict), wantStatus: http.StatusConflict},
		{name: "court not found", body: validBody, err: createBooking.ErrCourtNotFound, wantStatus: http.StatusNotFound},
		{name: "blocked", body: validBody, err: createBooking.ErrUserBlocked, wantStatus: http.StatusForbidden},
		{name: "duration", body: validBody, err: domain.ErrInvalidDuration, wantStatus: http.StatusBadRequest},
		{name: "schedule", body: validBody, err: domain.ErrInvalidSchedule, wantStatus: http.StatusBadRequest},
		{name: "past", body: validBody, err: createBooking.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "internal", body: validBody, err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
		{name: "bad json", body: `{"courtId":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"courtId":1,"userId":3}`, wantStatus: http.StatusBadRequest},
		{name: "bad time", body: strings.Replace(validBody, "19:30", "7pm", 1), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewHandler(&useCaseStub{err: tt.err}, logger.Nop()), tt.body, 10)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("conflict body names the commitment", func(t *testing.T) {
		w := serve(NewHandler(&useCaseStub{err: fmt.Errorf("%w: %w", createBooking.ErrSlotNotAvailable, conflict)}, logger.Nop()), validBody, 10)

		var resp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Conflict)
		assert.Equal(t, "booking", resp.Conflict.Kind)
		assert.Equal(t, int64(3), resp.Conflict.EntityID)
	})

	t.Run("no caller", func(t *testing.T) {
		w := serve(NewHandler(&useCaseStub{}, logger.Nop()), validBody, 0)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
