package get_available_slots

import (
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

// validateRequest checks ids, date and the optional slot length
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinBookingMinutes || req.DurationMinutes > domain.MaxBookingMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinBookingMinutes, domain.MaxBookingMinutes)
	}

	return nil
}
