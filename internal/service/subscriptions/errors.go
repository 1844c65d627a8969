package subscriptions

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAccessDenied         = errors.New("access denied")
	ErrInvalidInput         = errors.New("invalid input data")
	ErrInternal             = errors.New("service: internal error")
)
