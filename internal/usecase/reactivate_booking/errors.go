package reactivate_booking

import "errors"

var (
	ErrInvalidInput = errors.New("reactivate_booking: invalid input data")

	// ErrBookingNotFound no booking with that id
	ErrBookingNotFound = errors.New("reactivate_booking: booking not found")

	// ErrAccessDenied caller is neither the owner nor an admin
	ErrAccessDenied = errors.New("reactivate_booking: access denied")

	// ErrInvalidTransition only cancelada bookings can be reactivated
	ErrInvalidTransition = errors.New("reactivate_booking: booking is not cancelled")

	// ErrBookingInPast the booked date already passed
	ErrBookingInPast = errors.New("reactivate_booking: booking date already passed")

	// ErrReactivationConflict the slot was taken while the booking was cancelled, wraps *conflicts.ConflictError
	ErrReactivationConflict = errors.New("reactivate_booking: slot was taken in the meantime")

	ErrInternal = errors.New("reactivate_booking: internal error")
)
