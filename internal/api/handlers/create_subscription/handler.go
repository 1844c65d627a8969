package create_subscription

import (
	"errors"
	"net/http"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	createSubscription "github.com/Brian13b/QuicoBasquetProject/internal/usecase/create_subscription"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidTime        = "formato de hora inválido, se espera HH:MM"
	msgInvalidInput       = "datos del abono inválidos"
	msgInvalidSchedule    = "el horario debe estar entre las 08:00 y las 00:00"
	msgInvalidDuration    = "cada turno debe durar entre 60 y 120 minutos"
	msgInvalidWeekday     = "el día de la semana debe estar entre 0 (lunes) y 6 (domingo)"
	msgPastStart          = "la fecha de inicio no puede ser pasada"
	msgCourtNotFound      = "cancha no encontrada"
	msgUserNotFound       = "usuario no encontrado"
	msgUserBlocked        = "el usuario está bloqueado y no puede abonarse"
	msgSlotNotAvailable   = "el horario ya está ocupado en alguna fecha del abono"
)

type Handler struct {
	useCase CreateSubscriptionUseCase
	logger  Logger
}

func NewHandler(useCase CreateSubscriptionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/subscriptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req CreateSubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /subscriptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /subscriptions - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSubscription.ErrSlotNotAvailable):
			h.logger.Warn("POST /subscriptions - Slot not available: user_id=%d, court_id=%d, %v", userID, req.CourtID, err)
			handlers.RespondConflict(w, msgSlotNotAvailable, err)

		case errors.Is(err, createSubscription.ErrCourtNotFound):
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createSubscription.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createSubscription.ErrUserBlocked):
			h.logger.Warn("POST /subscriptions - User blocked: user_id=%d", userID)
			handlers.RespondForbidden(w, msgUserBlocked)

		case errors.Is(err, domain.ErrInvalidSchedule):
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, domain.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, domain.ErrInvalidWeekday):
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, createSubscription.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgPastStart)

		case errors.Is(err, createSubscription.ErrInvalidInput):
			h.logger.Warn("POST /subscriptions - Invalid input: user_id=%d, %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /subscriptions - Failed to create subscription: user_id=%d, court_id=%d, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /subscriptions - Subscription created successfully: subscription_id=%d, user_id=%d, rebalanced=%v",
		result.ID, userID, result.Rebalanced)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
