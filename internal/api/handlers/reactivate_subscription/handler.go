package reactivate_subscription

import (
	"errors"
	"net/http"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	reactivateSubscription "github.com/Brian13b/QuicoBasquetProject/internal/usecase/reactivate_subscription"
)

const (
	msgInvalidSubscriptionID = "ID de abono inválido"
	msgNotFound              = "abono no encontrado"
	msgForbidden             = "acceso denegado"
	msgNotCancelled          = "solo se pueden reactivar abonos cancelados"
	msgWindowEnded           = "el abono ya finalizó, debe renovarse"
	msgSlotTaken             = "el horario fue ocupado mientras el abono estaba cancelado"
)

type Handler struct {
	useCase ReactivateSubscriptionUseCase
	logger  Logger
}

func NewHandler(useCase ReactivateSubscriptionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/subscriptions/{subscriptionId}/reactivate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subscriptionID, err := handlers.PathInt64(r, "subscriptionId")
	if err != nil {
		h.logger.Warn("PATCH /subscriptions/{id}/reactivate - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reactivateSubscription.Request{Actor: actor, SubscriptionID: subscriptionID})
	if err != nil {
		switch {
		case errors.Is(err, reactivateSubscription.ErrSubscriptionNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reactivateSubscription.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reactivateSubscription.ErrInvalidTransition):
			handlers.RespondConflict(w, msgNotCancelled, nil)

		case errors.Is(err, reactivateSubscription.ErrWindowEnded):
			handlers.RespondConflict(w, msgWindowEnded, nil)

		case errors.Is(err, reactivateSubscription.ErrReactivationConflict):
			h.logger.Warn("PATCH /subscriptions/{id}/reactivate - Slot taken: subscription_id=%d, %v", subscriptionID, err)
			handlers.RespondConflict(w, msgSlotTaken, err)

		case errors.Is(err, reactivateSubscription.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSubscriptionID)

		default:
			h.logger.Error("PATCH /subscriptions/{id}/reactivate - Failed to reactivate subscription: subscription_id=%d, error=%v",
				subscriptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /subscriptions/{id}/reactivate - Subscription reactivated successfully: subscription_id=%d, user_id=%d",
		subscriptionID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
