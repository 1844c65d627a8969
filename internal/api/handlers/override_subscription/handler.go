package override_subscription

import (
	"errors"
	"net/http"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	adminOverride "github.com/Brian13b/QuicoBasquetProject/internal/usecase/admin_override"
)

const (
	msgInvalidSubscriptionID = "ID de abono inválido"
	msgInvalidRequestBody    = "cuerpo de la solicitud inválido"
	msgInvalidData           = "valores inválidos para el abono"
	msgNotFound              = "abono no encontrado"
	msgForbidden             = "solo un administrador puede modificar abonos"
)

type Handler struct {
	useCase OverrideUseCase
	logger  Logger
}

func NewHandler(useCase OverrideUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/subscriptions/{subscriptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subscriptionID, err := handlers.PathInt64(r, "subscriptionId")
	if err != nil {
		h.logger.Warn("PATCH /admin/subscriptions/{id} - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req OverrideSubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/subscriptions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sub, err := h.useCase.OverrideSubscription(r.Context(), req.ToUseCaseRequest(actor, subscriptionID))
	if err != nil {
		switch {
		case errors.Is(err, adminOverride.ErrSubscriptionNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, adminOverride.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/subscriptions/{id} - Access denied: subscription_id=%d, user_id=%d",
				subscriptionID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, adminOverride.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/subscriptions/{id} - Invalid data: subscription_id=%d, %v", subscriptionID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /admin/subscriptions/{id} - Failed to override subscription: subscription_id=%d, error=%v",
				subscriptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/subscriptions/{id} - Subscription overridden: subscription_id=%d, admin=%d, status=%s",
		subscriptionID, actor.UserID, sub.Status)
	handlers.RespondJSON(w, http.StatusOK, sub)
}
