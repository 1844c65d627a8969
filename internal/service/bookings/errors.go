package bookings

import "errors"

var (
	// ErrBookingNotFound no booking with that id
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied caller is neither the owner nor an admin
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel booking is already cancelled or completed
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput malformed request
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal storage failure
	ErrInternal = errors.New("service: internal error")
)
