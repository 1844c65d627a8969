package get_available_slots

import "errors"

var (
	// ErrCourtNotFound no court with that id
	ErrCourtNotFound = errors.New("get_available_slots: court not found")

	// ErrInvalidDate the date already passed
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidInput malformed request
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	ErrInternal = errors.New("get_available_slots: internal error")
)
