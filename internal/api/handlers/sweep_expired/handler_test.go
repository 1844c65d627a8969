package sweep_expired

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	sweepExpired "github.com/Brian13b/QuicoBasquetProject/internal/usecase/sweep_expired"
	"github.com/Brian13b/QuicoBasquetProject/pkg/logger"
)

type useCaseStub struct {
	got *sweepExpired.Request
	err error
}

func (s *useCaseStub) Execute(_ context.Context, req *sweepExpired.Request) (*sweepExpired.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &sweepExpired.Response{AsOf: "2024-07-01", Expired: []int64{3, 4}, RebalancedUsers: []int64{10}}, nil
}

func TestHandler_Sweep(t *testing.T) {
	stub := &useCaseStub{}
	w := httptest.NewRecorder()
	NewHandler(stub, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/subscriptions/sweep?asOf=2024-07-01", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sweepExpired.TriggerAdmin, stub.got.Trigger)
	assert.Equal(t, domain.MustDate("2024-07-01"), stub.got.AsOf)

	var resp sweepExpired.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []int64{3, 4}, resp.Expired)
}

func TestHandler_SweepDefaultsToToday(t *testing.T) {
	stub := &useCaseStub{}
	w := httptest.NewRecorder()
	NewHandler(stub, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/subscriptions/sweep", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, stub.got.AsOf.IsZero())
}

func TestHandler_SweepErrors(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&useCaseStub{}, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodPost, "/?asOf=yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	NewHandler(&useCaseStub{err: sweepExpired.ErrInternal}, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
