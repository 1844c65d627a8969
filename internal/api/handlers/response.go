package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
)

const (
	msgInternalError = "error interno del servidor"
	msgUnauthorized  = "usuario no autenticado"
)

// ErrorResponse body of every non-2xx answer
type ErrorResponse struct {
	Message  string          `json:"message"`
	Conflict *ConflictDetail `json:"conflict,omitempty"`
}

// ConflictDetail the commitment a rejected request collided with
type ConflictDetail struct {
	Kind      string `json:"kind"` // booking | subscription
	EntityID  int64  `json:"entityId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DecodeJSON decodes a single JSON object, rejecting unknown fields and trailing data
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("missing request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return errors.New("invalid JSON body")
	}
	return nil
}

// RespondJSON writes payload with the given status
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		http.Error(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = msgUnauthorized
	}
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409, with the colliding commitment when err carries one
func RespondConflict(w http.ResponseWriter, message string, err error) {
	resp := ErrorResponse{Message: message}
	if ce, ok := conflicts.AsConflict(err); ok {
		resp.Conflict = &ConflictDetail{
			Kind:      string(ce.Kind),
			EntityID:  ce.EntityID,
			Date:      ce.Date.Format(domain.DateFormat),
			StartTime: ce.Range.Start.String(),
			EndTime:   ce.Range.End.String(),
		}
	}
	RespondJSON(w, http.StatusConflict, resp)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// PathInt64 positive integer route variable
func PathInt64(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("missing path parameter %s", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid path parameter %s: %w", name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("path parameter %s must be positive", name)
	}
	return id, nil
}
