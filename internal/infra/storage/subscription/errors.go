package subscription

import "errors"

var (
	// ErrSubscriptionNotFound returned when no subscription matches the id
	ErrSubscriptionNotFound = errors.New("subscription.repository: subscription not found")

	ErrBuildQuery = errors.New("subscription.repository: failed to build query")
	ErrExecQuery  = errors.New("subscription.repository: failed to execute query")
	ErrScanRow    = errors.New("subscription.repository: failed to scan row")
)
