package courts

import "errors"

var (
	// ErrCourtNotFound no court with that id
	ErrCourtNotFound = errors.New("courts: court not found")

	// ErrAccessDenied pricing is admin only
	ErrAccessDenied = errors.New("courts: access denied")

	// ErrInvalidInput prices must be positive and discounts within 0..100
	ErrInvalidInput = errors.New("courts: invalid input data")

	// ErrUnknownSport the court has no price for the sport
	ErrUnknownSport = errors.New("courts: unknown sport")

	// ErrInternal storage failure
	ErrInternal = errors.New("courts: internal error")
)
