package renew_subscription

import (
	"errors"
	"net/http"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	renewSubscription "github.com/Brian13b/QuicoBasquetProject/internal/usecase/renew_subscription"
)

const (
	msgInvalidSubscriptionID = "ID de abono inválido"
	msgInvalidRequestBody    = "cuerpo de la solicitud inválido"
	msgInvalidDate           = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidEndDate        = "la nueva fecha de fin debe ser posterior a hoy y al inicio del abono"
	msgNotFound              = "abono no encontrado"
	msgForbidden             = "acceso denegado"
	msgCannotRenew           = "solo se pueden renovar abonos vencidos o cancelados"
	msgSlotTaken             = "el horario está ocupado en alguna fecha del nuevo período"
)

type Handler struct {
	useCase RenewSubscriptionUseCase
	logger  Logger
}

func NewHandler(useCase RenewSubscriptionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/subscriptions/{subscriptionId}/renew
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subscriptionID, err := handlers.PathInt64(r, "subscriptionId")
	if err != nil {
		h.logger.Warn("PATCH /subscriptions/{id}/renew - Invalid subscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscriptionID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req RenewSubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /subscriptions/{id}/renew - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, subscriptionID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, renewSubscription.ErrSubscriptionNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, renewSubscription.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, renewSubscription.ErrInvalidTransition):
			handlers.RespondConflict(w, msgCannotRenew, nil)

		case errors.Is(err, renewSubscription.ErrInvalidEndDate):
			handlers.RespondBadRequest(w, msgInvalidEndDate)

		case errors.Is(err, renewSubscription.ErrReactivationConflict):
			h.logger.Warn("PATCH /subscriptions/{id}/renew - Slot taken: subscription_id=%d, %v", subscriptionID, err)
			handlers.RespondConflict(w, msgSlotTaken, err)

		case errors.Is(err, renewSubscription.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /subscriptions/{id}/renew - Failed to renew subscription: subscription_id=%d, error=%v",
				subscriptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /subscriptions/{id}/renew - Subscription renewed successfully: subscription_id=%d, end_date=%s",
		subscriptionID, req.EndDate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
