package cancel_subscription

import (
	"errors"
	"net/http"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	cancelSubscription "github.com/Brian13b/QuicoBasquetProject/internal/usecase/cancel_subscription"
)

const (
	msgInvalidSubscriptionID = "ID de abono inválido"
	msgNotFound              = "abono no encontrado"
	msgForbidden             = "acceso denegado"
	msgCannotCancel          = "el abono no puede cancelarse en su estado actual"
)

type Handler struct {
	useCase CancelSubscriptionUseCase
	logger  Logger
}

func NewHandler(useCase CancelSubscriptionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/subscriptions/{subscriptionId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subscriptionID, err := handlers.PathInt64(r, "subscriptionId")
	if err != nil {
		h.logger.Warn("PATCH /subscriptions/{id}/cancel - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelSubscription.Request{Actor: actor, SubscriptionID: subscriptionID})
	if err != nil {
		switch {
		case errors.Is(err, cancelSubscription.ErrSubscriptionNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelSubscription.ErrAccessDenied):
			h.logger.Warn("PATCH /subscriptions/{id}/cancel - Access denied: subscription_id=%d, user_id=%d",
				subscriptionID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelSubscription.ErrInvalidTransition):
			handlers.RespondConflict(w, msgCannotCancel, nil)

		case errors.Is(err, cancelSubscription.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSubscriptionID)

		default:
			h.logger.Error("PATCH /subscriptions/{id}/cancel - Failed to cancel subscription: subscription_id=%d, error=%v",
				subscriptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /subscriptions/{id}/cancel - Subscription cancelled successfully: subscription_id=%d, discount=%.0f",
		subscriptionID, result.UserDiscountPercent)
	handlers.RespondJSON(w, http.StatusOK, result)
}
