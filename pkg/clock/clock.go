package clock

import "time"

// Real wall clock for production wiring
type Real struct{}

// Now returns the current time
func (Real) Now() time.Time {
	return time.Now()
}

// Fixed clock frozen at a moment, for tests
type Fixed time.Time

// Now returns the frozen moment
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
