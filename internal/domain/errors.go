package domain

import "errors"

var (
	// ErrInvalidSchedule time range outside operating hours or malformed
	ErrInvalidSchedule = errors.New("domain: invalid schedule")

	// ErrInvalidDuration booking length outside [MinBookingMinutes, MaxBookingMinutes]
	ErrInvalidDuration = errors.New("domain: invalid duration")

	// ErrInvalidWeekday weekday outside [0, 6]
	ErrInvalidWeekday = errors.New("domain: invalid weekday")
)
