package pricing

import "errors"

var (
	// ErrUnknownSport court has no price configured for the sport
	ErrUnknownSport = errors.New("pricing: unknown sport")

	// ErrNonPositivePrice computed price is zero or negative, the operation must be rejected
	ErrNonPositivePrice = errors.New("pricing: non-positive price")
)
