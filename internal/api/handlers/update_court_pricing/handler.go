package update_court_pricing

import (
	"errors"
	"net/http"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/courts"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/courts/models"
)

const (
	msgInvalidCourtID     = "ID de cancha inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "los precios deben ser positivos y los descuentos estar entre 0 y 100"
	msgUnknownSport       = "deporte desconocido"
	msgNotFound           = "cancha no encontrada"
	msgForbidden          = "solo un administrador puede modificar precios"
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

// Handle PUT /api/v1/admin/courts/{courtId}/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := handlers.PathInt64(r, "courtId")
	if err != nil {
		h.logger.Warn("PUT /admin/courts/{id}/pricing - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req models.UpdatePricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/courts/{id}/pricing - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Actor = actor
	req.CourtID = courtID

	// Existing subscriptions keep their monthly price
	result, err := h.service.UpdatePricing(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, courts.ErrAccessDenied):
			h.logger.Warn("PUT /admin/courts/{id}/pricing - Access denied: court_id=%d, user_id=%d",
				courtID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, courts.ErrUnknownSport):
			handlers.RespondBadRequest(w, msgUnknownSport)

		case errors.Is(err, courts.ErrInvalidInput):
			h.logger.Warn("PUT /admin/courts/{id}/pricing - Invalid data: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/courts/{id}/pricing - Failed to update pricing: court_id=%d, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/courts/{id}/pricing - Pricing updated successfully: court_id=%d, user_id=%d",
		courtID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
