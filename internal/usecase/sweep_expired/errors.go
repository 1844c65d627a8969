package sweep_expired

import "errors"

var (
	ErrInvalidInput = errors.New("sweep_expired: invalid input data")

	ErrInternal = errors.New("sweep_expired: internal error")
)
