package reactivate_booking

import (
	"errors"
	"net/http"

	"github.com/Brian13b/QuicoBasquetProject/internal/api/handlers"
	"github.com/Brian13b/QuicoBasquetProject/internal/api/middleware"
	reactivateBooking "github.com/Brian13b/QuicoBasquetProject/internal/usecase/reactivate_booking"
)

const (
	msgInvalidBookingID = "ID de reserva inválido"
	msgNotFound         = "reserva no encontrada"
	msgForbidden        = "acceso denegado"
	msgNotCancelled     = "solo se pueden reactivar reservas canceladas"
	msgInPast           = "la fecha de la reserva ya pasó"
	msgSlotTaken        = "el horario fue ocupado mientras la reserva estaba cancelada"
)

type Handler struct {
	useCase ReactivateBookingUseCase
	logger  Logger
}

func NewHandler(useCase ReactivateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reactivate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reactivate - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "")
		return
	}

	booking, err := h.useCase.Execute(r.Context(), &reactivateBooking.Request{Actor: actor, BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, reactivateBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reactivateBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/reactivate - Access denied: booking_id=%d, user_id=%d",
				bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reactivateBooking.ErrInvalidTransition):
			handlers.RespondConflict(w, msgNotCancelled, nil)

		case errors.Is(err, reactivateBooking.ErrBookingInPast):
			handlers.RespondBadRequest(w, msgInPast)

		case errors.Is(err, reactivateBooking.ErrReactivationConflict):
			h.logger.Warn("PATCH /bookings/{id}/reactivate - Slot taken: booking_id=%d, %v", bookingID, err)
			handlers.RespondConflict(w, msgSlotTaken, err)

		case errors.Is(err, reactivateBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("PATCH /bookings/{id}/reactivate - Failed to reactivate booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reactivate - Booking reactivated successfully: booking_id=%d, user_id=%d",
		bookingID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
