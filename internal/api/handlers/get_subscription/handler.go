package get_subscription

import (
	"errors"
	"net/http"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions"
)

const (
	msgInvalidSubscriptionID = "ID de abono inválido"
	msgNotFound              = "abono no encontrado"
	msgForbidden             = "acceso denegado"
)

type Handler struct {
	service SubscriptionService
	logger  Logger
}

func NewHandler(service SubscriptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/subscriptions/{subscriptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subscriptionID, err := handlers.PathInt64(r, "subscriptionId")
	if err != nil {
		h.logger.Warn("GET /subscriptions/{id} - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	sub, err := h.service.GetByID(r.Context(), subscriptionID, actor)
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrSubscriptionNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, subscriptions.ErrAccessDenied):
			h.logger.Warn("GET /subscriptions/{id} - Access denied: subscription_id=%d, user_id=%d",
				subscriptionID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /subscriptions/{id} - Failed to get subscription: subscription_id=%d, error=%v",
				subscriptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sub)
}
