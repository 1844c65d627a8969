package admin_override

import "errors"

var (
	// ErrInvalidInput unknown status, negative price or discount outside 0..100
	ErrInvalidInput = errors.New("admin_override: invalid input data")

	// ErrAccessDenied overrides are admin only
	ErrAccessDenied = errors.New("admin_override: access denied")

	ErrBookingNotFound = errors.New("admin_override: booking not found")

	ErrSubscriptionNotFound = errors.New("admin_override: subscription not found")

	ErrInternal = errors.New("admin_override: internal error")
)
