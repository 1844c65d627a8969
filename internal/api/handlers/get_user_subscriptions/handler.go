package get_user_subscriptions

import (
	"errors"
	"net/http"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
)

const (
	msgInvalidUserID = "ID de usuario inválido"
	msgInvalidStatus = "estado de abono inválido"
	msgForbidden     = "acceso denegado"
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

// Handle GET /api/v1/users/{userId}/subscriptions
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathInt64(r, "userId")
	if err != nil {
		h.logger.Warn("GET /users/{userId}/subscriptions - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.GetUserSubscriptions(r.Context(), &models.GetUserSubscriptionsRequest{
		Actor:  actor,
		UserID: userID,
		Status: status,
	})
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, subscriptions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{userId}/subscriptions - Failed to get subscriptions: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/subscriptions - Subscriptions retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Subscriptions))
	handlers.RespondJSON(w, http.StatusOK, result.Subscriptions)
}
