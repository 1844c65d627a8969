package sweep_expired

import (
	"errors"
	"net/http"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	sweepExpired "github.com/Brian13b/QuicoBasquetProject/internal/usecase/sweep_expired"
)

const (
	msgInvalidDate = "formato de fecha inválido, se espera YYYY-MM-DD"
)

type Handler struct {
	useCase SweepUseCase
	logger  Logger
}

func NewHandler(useCase SweepUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/subscriptions/sweep
// Query params: asOf (optional, YYYY-MM-DD, default today)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &sweepExpired.Request{Trigger: sweepExpired.TriggerAdmin}

	if raw := r.URL.Query().Get("asOf"); raw != "" {
		asOf, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("POST /admin/subscriptions/sweep - Invalid asOf: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.AsOf = asOf
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, sweepExpired.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("POST /admin/subscriptions/sweep - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/subscriptions/sweep - Sweep done: as_of=%s, expired=%d, users=%d",
		result.AsOf, len(result.Expired), len(result.RebalancedUsers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
