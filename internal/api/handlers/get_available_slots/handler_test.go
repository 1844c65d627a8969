package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	getAvailableSlots "github.com/Brian13b/QuicoBasquetProject/internal/usecase/get_available_slots"
	"github.com/Brian13b/QuicoBasquetProject/pkg/logger"
)

type useCaseStub struct {
	got *getAvailableSlots.Request
	err error
}

func (s *useCaseStub) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &getAvailableSlots.Response{
		Date:    req.Date,
		CourtID: req.CourtID,
		Slots: []getAvailableSlots.Slot{
			{StartTime: "08:00", EndTime: "09:00", DurationMinutes: 60, Available: true},
			{StartTime: "09:00", EndTime: "10:00", DurationMinutes: 60, Available: false},
		},
	}, nil
}

func get(h *Handler, courtID, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/courts/"+courtID+"/available-slots?"+query, nil)
	r = mux.SetURLVars(r, map[string]string{"courtId": courtID})
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandler_Slots(t *testing.T) {
	stub := &useCaseStub{}
	w := get(NewHandler(stub, logger.Nop()), "1", "date=2024-06-03&duration=90")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.got)
	assert.Equal(t, 90, stub.got.DurationMinutes)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-06-03", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		courtID string
		query   string
		err     error
		want    int
	}{
		{name: "missing date", courtID: "1", want: http.StatusBadRequest},
		{name: "bad date", courtID: "1", query: "date=03/06/2024", want: http.StatusBadRequest},
		{name: "bad court", courtID: "x", query: "date=2024-06-03", want: http.StatusBadRequest},
		{name: "bad duration", courtID: "1", query: "date=2024-06-03&duration=abc", want: http.StatusBadRequest},
		{name: "duration out of range", courtID: "1", query: "date=2024-06-03&duration=30", err: domain.ErrInvalidDuration, want: http.StatusBadRequest},
		{name: "past date", courtID: "1", query: "date=2020-01-01", err: getAvailableSlots.ErrInvalidDate, want: http.StatusBadRequest},
		{name: "court not found", courtID: "9", query: "date=2024-06-03", err: getAvailableSlots.ErrCourtNotFound, want: http.StatusNotFound},
		{name: "internal", courtID: "1", query: "date=2024-06-03", err: getAvailableSlots.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(NewHandler(&useCaseStub{err: tt.err}, logger.Nop()), tt.courtID, tt.query)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
