package create_subscription

import "errors"

var (
	// ErrInvalidInput malformed request
	ErrInvalidInput = errors.New("create_subscription: invalid input data")

	// ErrInvalidDate the window starts in the past
	ErrInvalidDate = errors.New("create_subscription: start date is in the past")

	// ErrCourtNotFound no court with that id
	ErrCourtNotFound = errors.New("create_subscription: court not found")

	// ErrUserNotFound user service does not know the caller
	ErrUserNotFound = errors.New("create_subscription: user not found")

	// ErrUserBlocked the caller is blocked from booking
	ErrUserBlocked = errors.New("create_subscription: user is blocked")

	// ErrSlotNotAvailable an occurrence collides with a booking or subscription, wraps *conflicts.ConflictError
	ErrSlotNotAvailable = errors.New("create_subscription: slot not available")

	ErrInternal = errors.New("create_subscription: internal error")
)
