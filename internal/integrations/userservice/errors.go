package userservice

import "errors"

var (
	// ErrUserNotFound user service has no such user
	ErrUserNotFound = errors.New("userservice client: user not found")

	// ErrInternal request could not be sent or completed
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse unexpected status or body
	ErrInvalidResponse = errors.New("userservice client: invalid response")

	// ErrServiceDegraded the user service is unavailable and the caller continues without it
	ErrServiceDegraded = errors.New("userservice unavailable: graceful degradation applied")
)
