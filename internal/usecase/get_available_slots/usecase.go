package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	courtRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/court"
	"github.com/Brian13b/QuicoBasquetProject/pkg/clock"
)

// UseCase lists the hourly slots of a court and whether each is free
type UseCase struct {
	courtRepo    CourtRepository
	occupancy    OccupancyReader
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	courtRepo CourtRepository,
	occupancy OccupancyReader,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:    courtRepo,
		occupancy:    occupancy,
		timeProvider: clock.Real{},
		logger:       logger,
	}
}

// Execute builds the day's slots and flags the ones taken by bookings or subscription occurrences
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: court=%d, date=%s, duration=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	date := domain.DateOnly(req.Date)

	if date.Before(domain.DateOnly(now)) {
		return nil, ErrInvalidDate
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.MinBookingMinutes
	}

	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	occupied, err := uc.occupancy.Occupied(ctx, req.CourtID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to read occupancy: %v", err)
		return nil, fmt.Errorf("%w: failed to read occupancy: %v", ErrInternal, err)
	}

	slots, err := markOccupied(generateTimeSlots(duration, date, now), occupied)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	free := 0
	for _, s := range slots {
		if s.Available {
			free++
		}
	}
	uc.logger.Info("GetAvailableSlots: court=%d date=%s has %d of %d slots free",
		req.CourtID, date.Format(domain.DateFormat), free, len(slots))

	return &Response{
		Date:    date,
		CourtID: req.CourtID,
		Slots:   slots,
	}, nil
}
