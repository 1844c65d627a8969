package reactivate_subscription

import "errors"

var (
	ErrInvalidInput = errors.New("reactivate_subscription: invalid input data")

	ErrSubscriptionNotFound = errors.New("reactivate_subscription: subscription not found")

	ErrAccessDenied = errors.New("reactivate_subscription: access denied")

	// ErrInvalidTransition only cancelada subscriptions can be reactivated
	ErrInvalidTransition = errors.New("reactivate_subscription: subscription is not cancelled")

	// ErrWindowEnded the end date already passed, the subscription has to be renewed instead
	ErrWindowEnded = errors.New("reactivate_subscription: subscription window already ended")

	// ErrReactivationConflict an occurrence was taken while cancelled, wraps *conflicts.ConflictError
	ErrReactivationConflict = errors.New("reactivate_subscription: slot was taken in the meantime")

	ErrInternal = errors.New("reactivate_subscription: internal error")
)
