package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
)

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{name: "valid", payload: `{"name":"cancha"}`},
		{name: "unknown field", payload: `{"name":"x","extra":1}`, wantErr: true},
		{name: "trailing object", payload: `{"name":"x"}{"name":"y"}`, wantErr: true},
		{name: "not json", payload: `name=x`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			var dst body
			err := DecodeJSON(r, &dst)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "cancha", dst.Name)
		})
	}
}

func TestRespondConflict_IncludesCommitment(t *testing.T) {
	ce := &conflicts.ConflictError{
		Kind:     conflicts.KindSubscription,
		EntityID: 7,
		Date:     domain.MustDate("2024-06-03"),
		Range:    domain.MustTimeRange("18:00", "19:00"),
	}
	w := httptest.NewRecorder()

	RespondConflict(w, "ocupado", fmt.Errorf("create_booking: slot not available: %w", ce))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ocupado", resp.Message)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, "subscription", resp.Conflict.Kind)
	assert.Equal(t, int64(7), resp.Conflict.EntityID)
	assert.Equal(t, "2024-06-03", resp.Conflict.Date)
	assert.Equal(t, "19:00", resp.Conflict.EndTime)
}

func TestRespondConflict_WithoutDetail(t *testing.T) {
	w := httptest.NewRecorder()
	RespondConflict(w, "transición inválida", nil)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Conflict)
}

func TestPathInt64(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"bookingId": tt.raw})
			got, err := PathInt64(r, "bookingId")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := PathInt64(httptest.NewRequest(http.MethodGet, "/", nil), "bookingId")
	assert.Error(t, err)
}
