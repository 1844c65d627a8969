package renew_subscription

import "errors"

var (
	ErrInvalidInput = errors.New("renew_subscription: invalid input data")

	ErrSubscriptionNotFound = errors.New("renew_subscription: subscription not found")

	ErrAccessDenied = errors.New("renew_subscription: access denied")

	// ErrInvalidTransition only vencida or cancelada subscriptions can be renewed
	ErrInvalidTransition = errors.New("renew_subscription: subscription cannot be renewed")

	// ErrInvalidEndDate new end date before today or before the start date
	ErrInvalidEndDate = errors.New("renew_subscription: invalid end date")

	// ErrReactivationConflict an occurrence of the renewed window is taken, wraps *conflicts.ConflictError
	ErrReactivationConflict = errors.New("renew_subscription: slot was taken in the meantime")

	ErrInternal = errors.New("renew_subscription: internal error")
)
