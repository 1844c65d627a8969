package domain

import (
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/pkg/types"
)

// AvailableSlot a bookable start time on a court for one date
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}

// Range returns the time range the slot would occupy. A slot running past midnight has no range.
func (s *AvailableSlot) Range() (TimeRange, error) {
	end, err := s.StartTime.AddMinutes(s.DurationMinutes)
	if err != nil {
		return TimeRange{}, fmt.Errorf("slot %s +%dmin: %w", s.StartTime, s.DurationMinutes, err)
	}
	return TimeRange{Start: s.StartTime, End: end}, nil
}
