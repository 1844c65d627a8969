package migrations

import "errors"

var (
	ErrInit  = errors.New("migrations: failed to initialise")
	ErrApply = errors.New("migrations: failed to apply")
)
