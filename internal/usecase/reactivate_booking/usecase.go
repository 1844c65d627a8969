package reactivate_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	bookingRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/booking"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/bookings/models"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
	"github.com/Brian13b/QuicoBasquetProject/pkg/clock"
)

// UseCase brings a cancelled booking back if its slot is still free
type UseCase struct {
	bookingRepo  BookingRepository
	courtLocker  CourtLocker
	checker      ConflictChecker
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtLocker CourtLocker,
	checker ConflictChecker,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtLocker:  courtLocker,
		checker:      checker,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: clock.Real{},
		logger:       logger,
	}
}

// Execute re-runs the booking conflict check, ignoring the booking itself, before
// flipping it back to confirmada
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("ReactivateBooking: booking=%d by user=%d", req.BookingID, req.Actor.UserID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	var booking *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ReactivateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ReactivateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !req.Actor.CanAccess(b.UserID) {
			uc.logger.Warn("ReactivateBooking: access denied for user=%d to booking id=%d", req.Actor.UserID, b.ID)
			return ErrAccessDenied
		}
		if !b.CanBeReactivated() {
			uc.logger.Warn("ReactivateBooking: booking id=%d has status=%s", b.ID, b.Status)
			return fmt.Errorf("%w: status %s", ErrInvalidTransition, b.Status)
		}
		if domain.DateOnly(b.Date).Before(domain.DateOnly(now)) {
			return ErrBookingInPast
		}

		if err := uc.courtLocker.LockForUpdate(txCtx, b.CourtID); err != nil {
			uc.logger.Error("ReactivateBooking: failed to lock court id=%d: %v", b.CourtID, err)
			return fmt.Errorf("%w: failed to lock court: %v", ErrInternal, err)
		}

		if err := uc.checker.CheckBooking(txCtx, b.CourtID, b.Date, b.Range, &b.ID); err != nil {
			if conflict, ok := conflicts.AsConflict(err); ok {
				uc.logger.Warn("ReactivateBooking: booking id=%d collides with %s id=%d", b.ID, conflict.Kind, conflict.EntityID)
				return fmt.Errorf("%w: %w", ErrReactivationConflict, conflict)
			}
			uc.logger.Error("ReactivateBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, domain.BookingStatusConfirmed); err != nil {
			uc.logger.Error("ReactivateBooking: failed to update booking id=%d: %v", b.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
		b.Status = domain.BookingStatusConfirmed
		b.CancelledAt = nil

		if b.PaymentStatus == domain.BookingPaymentCancelled {
			if err := uc.bookingRepo.UpdatePaymentStatus(txCtx, b.ID, domain.BookingPaymentPending); err != nil {
				return fmt.Errorf("%w: failed to reset payment status: %v", ErrInternal, err)
			}
			b.PaymentStatus = domain.BookingPaymentPending
		}

		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReactivateBooking: booking id=%d is confirmada again", booking.ID)

	if err := uc.publisher.Publish(ctx, events.ForBooking(events.BookingReactivated, booking, now)); err != nil {
		uc.logger.Error("ReactivateBooking: failed to publish event for booking id=%d: %v", booking.ID, err)
	}

	return models.FromDomainBooking(booking), nil
}
