package domain

import (
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/pkg/types"
)

// TimeRange start/end pair within one day
// End "00:00" means midnight: it counts as 24:00 for arithmetic
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeRange parses "HH:MM" bounds, checking format only
func NewTimeRange(start, end string) (TimeRange, error) {
	s, err := types.NewTimeStringFromString(start)
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: start: %v", ErrInvalidSchedule, err)
	}
	e, err := types.NewTimeStringFromString(end)
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: end: %v", ErrInvalidSchedule, err)
	}
	return TimeRange{Start: s, End: e}, nil
}

// MustTimeRange is NewTimeRange for literals
func MustTimeRange(start, end string) TimeRange {
	r, err := NewTimeRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// StartMinutes minute-of-day of the start
func (r TimeRange) StartMinutes() int {
	return r.Start.Minutes()
}

// EndMinutes minute-of-day of the end with midnight substituted by 1440
func (r TimeRange) EndMinutes() int {
	end := r.End.Minutes()
	if end == MidnightMinute {
		return EndOfDayMinute
	}
	return end
}

// EndsAtMidnight reports whether the range closes the day
func (r TimeRange) EndsAtMidnight() bool {
	return r.End.Minutes() == MidnightMinute
}

// DurationMinutes end - start, rolling over midnight when end < start
func (r TimeRange) DurationMinutes() int {
	d := r.End.Minutes() - r.Start.Minutes()
	if d < 0 {
		d += EndOfDayMinute
	}
	return d
}

// Overlaps reports whether two ranges share any minute
// Adjacent ranges (one ends where the other starts) do not overlap
func (r TimeRange) Overlaps(other TimeRange) bool {
	if r.Start == other.Start && r.End == other.End {
		return true
	}
	return r.EndMinutes() > other.StartMinutes() && r.StartMinutes() < other.EndMinutes()
}

// ValidateOperatingWindow checks the range against opening hours (08:00 to midnight)
func (r TimeRange) ValidateOperatingWindow() error {
	if err := r.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidSchedule, err)
	}
	if err := r.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidSchedule, err)
	}

	start, end := r.Start.Minutes(), r.End.Minutes()

	if start < OpeningMinute {
		return fmt.Errorf("%w: start %s is before opening time", ErrInvalidSchedule, r.Start)
	}
	if end != MidnightMinute && end < OpeningMinute {
		return fmt.Errorf("%w: end %s is past midnight", ErrInvalidSchedule, r.End)
	}
	if start >= end && end != MidnightMinute {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidSchedule, r.Start, r.End)
	}
	if start >= LatestStartMinute && end != MidnightMinute {
		return fmt.Errorf("%w: ranges starting at 23:00 or later must end at 00:00", ErrInvalidSchedule)
	}
	return nil
}

// ValidateBookingDuration checks the [60, 120] minute rule shared by bookings and subscriptions
func (r TimeRange) ValidateBookingDuration() error {
	d := r.DurationMinutes()
	if d < MinBookingMinutes || d > MaxBookingMinutes {
		return fmt.Errorf("%w: %d minutes, allowed %d-%d", ErrInvalidDuration, d, MinBookingMinutes, MaxBookingMinutes)
	}
	return nil
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
