package override_booking

import (
	"errors"
	"net/http"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	adminOverride "github.com/Brian13b/QuicoBasquetProject/internal/usecase/admin_override"
)

const (
	msgInvalidBookingID   = "ID de reserva inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "valores inválidos para la reserva"
	msgNotFound           = "reserva no encontrada"
	msgForbidden          = "solo un administrador puede modificar reservas"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	var req OverrideBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.useCase.OverrideBooking(r.Context(), req.ToUseCaseRequest(actor, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, adminOverride.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, adminOverride.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, adminOverride.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id} - Invalid data: booking_id=%d, %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /admin/bookings/{id} - Failed to override booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id} - Booking overridden: booking_id=%d, admin=%d, status=%s, payment=%s",
		bookingID, actor.UserID, booking.Status, booking.PaymentStatus)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
