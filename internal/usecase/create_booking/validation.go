package create_booking

import (
	"fmt"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/pkg/types"
)

// validateRequest checks the request fields and builds the booked range
func validateRequest(req *Request) (domain.TimeRange, error) {
	if req.UserID <= 0 {
		return domain.TimeRange{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return domain.TimeRange{}, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if !domain.Sport(req.Sport).IsValid() {
		return domain.TimeRange{}, fmt.Errorf("%w: unknown sport %q", ErrInvalidInput, req.Sport)
	}

	if req.Date.IsZero() {
		return domain.TimeRange{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return domain.TimeRange{}, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if method != domain.PaymentCash && method != domain.PaymentTransfer {
		return domain.TimeRange{}, fmt.Errorf("%w: payment method must be efectivo or transferencia", ErrInvalidInput)
	}

	rng := domain.TimeRange{Start: req.StartTime, End: req.EndTime}
	if err := rng.ValidateOperatingWindow(); err != nil {
		return domain.TimeRange{}, err
	}
	if err := rng.ValidateBookingDuration(); err != nil {
		return domain.TimeRange{}, err
	}

	return rng, nil
}

// validateDate rejects past dates and, for today, start times already passed
func validateDate(date time.Time, start types.TimeString, now time.Time) error {
	day := domain.DateOnly(date)
	today := domain.DateOnly(now)

	if day.Before(today) {
		return ErrInvalidDate
	}

	if day.Equal(today) && start.Minutes() <= types.NewTimeString(now).Minutes() {
		return fmt.Errorf("%w: start time %s already passed", ErrInvalidDate, start)
	}

	return nil
}
