package create_subscription

import (
	"fmt"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/recurrence"
)

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
	if err := domain.Weekday(req.Weekday).Validate(); err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !domain.PaymentMethod(req.PaymentMethod).IsValid() {
		return domain.TimeRange{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
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

	rng := domain.TimeRange{Start: req.StartTime, End: req.EndTime}
	if err := rng.ValidateOperatingWindow(); err != nil {
		return domain.TimeRange{}, err
	}
	if err := rng.ValidateBookingDuration(); err != nil {
		return domain.TimeRange{}, err
	}

	if req.StartDate.IsZero() {
		return domain.TimeRange{}, fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if req.EndDate != nil {
		if domain.DateOnly(*req.EndDate).Before(domain.DateOnly(req.StartDate)) {
			return domain.TimeRange{}, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
		}
		weekday := domain.Weekday(req.Weekday)
		if _, ok := recurrence.FirstOn(weekday, domain.DateOnly(req.StartDate), domain.DateOnly(*req.EndDate)); !ok {
			return domain.TimeRange{}, fmt.Errorf("%w: no %s between startDate and endDate", ErrInvalidInput, weekday)
		}
	}

	return rng, nil
}

func validateStartDate(start, now time.Time) error {
	if domain.DateOnly(start).Before(domain.DateOnly(now)) {
		return ErrInvalidDate
	}
	return nil
}
