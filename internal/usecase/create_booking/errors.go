package create_booking

import "errors"

var (
	// ErrInvalidInput malformed request
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate booking date or start time already passed
	ErrInvalidDate = errors.New("create_booking: booking date is in the past")

	// ErrCourtNotFound no court with that id
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrUserNotFound user service does not know the caller
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrUserBlocked the caller is blocked from booking
	ErrUserBlocked = errors.New("create_booking: user is blocked")

	// ErrSlotNotAvailable the range collides with a booking or subscription, wraps *conflicts.ConflictError
	ErrSlotNotAvailable = errors.New("create_booking: slot not available")

	// ErrInternal storage or integration failure
	ErrInternal = errors.New("create_booking: internal error")
)
