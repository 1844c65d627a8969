package cancel_subscription

import "errors"

var (
	ErrInvalidInput = errors.New("cancel_subscription: invalid input data")

	ErrSubscriptionNotFound = errors.New("cancel_subscription: subscription not found")

	ErrAccessDenied = errors.New("cancel_subscription: access denied")

	// ErrInvalidTransition only activa or pendiente subscriptions can be cancelled
	ErrInvalidTransition = errors.New("cancel_subscription: subscription cannot be cancelled")

	ErrInternal = errors.New("cancel_subscription: internal error")
)
