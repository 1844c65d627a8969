package recurrence

import "errors"

var (
	// ErrUnboundedWindow expansion requested without a finite end date
	ErrUnboundedWindow = errors.New("recurrence: unbounded window")
)
