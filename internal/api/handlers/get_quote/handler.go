package get_quote

import (
	"errors"
	"net/http"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/courts"
)

const (
	msgInvalidCourtID  = "ID de cancha inválido"
	msgInvalidParams   = "parámetros de cotización inválidos"
	msgInvalidDuration = "la duración debe estar entre 60 y 120 minutos"
	msgUnknownSport    = "deporte desconocido"
	msgNotFound        = "cancha no encontrada"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/quote
// Query params: sport (required), minutes (default 60), subscription, weekday, userId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := handlers.PathInt64(r, "courtId")
	if err != nil {
		h.logger.Warn("GET /courts/{id}/quote - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	serviceReq, err := ToServiceRequest(courtID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /courts/{id}/quote - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Public route: a caller identified by the gateway gets their own tier when no userId is given
	if serviceReq.UserID == nil {
		if userID, ok := middleware.GetUserID(r.Context()); ok {
			serviceReq.UserID = &userID
		}
	}

	result, err := h.service.Quote(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, courts.ErrUnknownSport):
			handlers.RespondBadRequest(w, msgUnknownSport)

		case errors.Is(err, domain.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, courts.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /courts/{id}/quote - Failed to quote: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
