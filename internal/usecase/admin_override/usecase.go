package admin_override

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	bookingRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/booking"
	subscriptionRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/subscription"
	bookingModels "github.com/Brian13b/QuicoBasquetProject/internal/service/bookings/models"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
	subscriptionModels "github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
	"github.com/Brian13b/QuicoBasquetProject/pkg/clock"
)

// UseCase administrative edits of status, payment status and price
//
// Overrides are never rejected by the conflict resolver: an admin may set a booking back to
// confirmada on a slot that is taken. Guarded transitions live in the lifecycle use cases.
type UseCase struct {
	bookingRepo      BookingRepository
	subscriptionRepo SubscriptionRepository
	checker          ConflictChecker
	discounts        DiscountService
	publisher        EventPublisher
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	subscriptionRepo SubscriptionRepository,
	checker ConflictChecker,
	discounts DiscountService,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		subscriptionRepo: subscriptionRepo,
		checker:          checker,
		discounts:        discounts,
		publisher:        publisher,
		txManager:        txManager,
		timeProvider:     clock.Real{},
		logger:           logger,
	}
}

// OverrideBooking applies the non-nil fields of req
func (uc *UseCase) OverrideBooking(ctx context.Context, req *BookingRequest) (*bookingModels.BookingResponse, error) {
	if err := validateBookingRequest(req); err != nil {
		uc.logger.Warn("OverrideBooking: rejected for booking=%d by user=%d: %v", req.BookingID, req.Actor.UserID, err)
		return nil, err
	}

	var (
		booking  *domain.Booking
		previous domain.BookingStatus
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		previous = b.Status

		if req.Status != nil {
			status := domain.BookingStatus(*req.Status)
			if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, status); err != nil {
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}
			b.Status = status
		}

		if req.PaymentStatus != nil {
			status := domain.BookingPaymentStatus(*req.PaymentStatus)
			if err := uc.bookingRepo.UpdatePaymentStatus(txCtx, b.ID, status); err != nil {
				return fmt.Errorf("%w: failed to update payment status: %v", ErrInternal, err)
			}
			b.PaymentStatus = status
		}

		if req.Price != nil {
			if err := uc.bookingRepo.UpdatePrice(txCtx, b.ID, *req.Price); err != nil {
				return fmt.Errorf("%w: failed to update price: %v", ErrInternal, err)
			}
			b.Price = *req.Price
		}

		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("OverrideBooking: admin=%d set booking id=%d status=%s payment=%s price=%.2f",
		req.Actor.UserID, booking.ID, booking.Status, booking.PaymentStatus, booking.Price)

	if t, ok := bookingTransitionEvent(previous, booking.Status); ok {
		if err := uc.publisher.Publish(ctx, events.ForBooking(t, booking, uc.timeProvider.Now())); err != nil {
			uc.logger.Error("OverrideBooking: failed to publish event for booking id=%d: %v", booking.ID, err)
		}
	}

	return bookingModels.FromDomainBooking(booking), nil
}

// OverrideSubscription applies the non-nil fields of req. A status change rebalances the
// user's tier first, so an explicit price or discount in the same request wins.
//
// A pendiente subscription holds no slot, so approving it (pendiente -> activa) may land it on
// a weekly slot taken in the meantime. The approval still goes through; the collision is
// logged at warn level with the conflicting commitment.
func (uc *UseCase) OverrideSubscription(ctx context.Context, req *SubscriptionRequest) (*subscriptionModels.SubscriptionResponse, error) {
	if err := validateSubscriptionRequest(req); err != nil {
		uc.logger.Warn("OverrideSubscription: rejected for subscription=%d by user=%d: %v", req.SubscriptionID, req.Actor.UserID, err)
		return nil, err
	}

	var (
		sub      *domain.Subscription
		previous domain.SubscriptionStatus
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		s, err := uc.subscriptionRepo.GetByID(txCtx, req.SubscriptionID)
		if err != nil {
			if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
				return ErrSubscriptionNotFound
			}
			return fmt.Errorf("%w: failed to get subscription: %v", ErrInternal, err)
		}
		previous = s.Status

		if req.Status != nil {
			status := domain.SubscriptionStatus(*req.Status)
			if status == domain.SubscriptionStatusActive && previous != domain.SubscriptionStatusActive {
				if err := uc.warnIfTaken(txCtx, s); err != nil {
					return err
				}
			}
			if err := uc.subscriptionRepo.UpdateStatus(txCtx, s.ID, status); err != nil {
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}
			s.Status = status

			if status != previous {
				rb, err := uc.discounts.Rebalance(txCtx, s.UserID)
				if err != nil {
					return fmt.Errorf("%w: failed to rebalance discounts: %v", ErrInternal, err)
				}
				if price, ok := rb.MonthlyPrices[s.ID]; ok {
					s.DiscountPercent = rb.DiscountPercent
					s.MonthlyPrice = price
				}
			}
		}

		if req.PaymentStatus != nil {
			status := domain.SubscriptionPaymentStatus(*req.PaymentStatus)
			if err := uc.subscriptionRepo.UpdatePaymentStatus(txCtx, s.ID, status); err != nil {
				return fmt.Errorf("%w: failed to update payment status: %v", ErrInternal, err)
			}
			s.PaymentStatus = status
		}

		if req.DiscountPercent != nil {
			if err := uc.subscriptionRepo.UpdateDiscount(txCtx, s.ID, *req.DiscountPercent); err != nil {
				return fmt.Errorf("%w: failed to update discount: %v", ErrInternal, err)
			}
			s.DiscountPercent = *req.DiscountPercent
		}

		if req.MonthlyPrice != nil {
			if err := uc.subscriptionRepo.UpdatePrice(txCtx, s.ID, *req.MonthlyPrice); err != nil {
				return fmt.Errorf("%w: failed to update price: %v", ErrInternal, err)
			}
			s.MonthlyPrice = *req.MonthlyPrice
		}

		sub = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("OverrideSubscription: admin=%d set subscription id=%d status=%s payment=%s discount=%.0f%% monthly=%.2f",
		req.Actor.UserID, sub.ID, sub.Status, sub.PaymentStatus, sub.DiscountPercent, sub.MonthlyPrice)

	if t, ok := subscriptionTransitionEvent(previous, sub.Status); ok {
		if err := uc.publisher.Publish(ctx, events.ForSubscription(t, sub, uc.timeProvider.Now())); err != nil {
			uc.logger.Error("OverrideSubscription: failed to publish event for subscription id=%d: %v", sub.ID, err)
		}
	}

	return subscriptionModels.FromDomainSubscription(sub), nil
}

// warnIfTaken logs when activating s collides with what already holds the court.
// Only the part of the window from today on is checked.
func (uc *UseCase) warnIfTaken(ctx context.Context, s *domain.Subscription) error {
	from := domain.DateOnly(uc.timeProvider.Now())
	if start := domain.DateOnly(s.StartDate); start.After(from) {
		from = start
	}
	if s.EndDate != nil && domain.DateOnly(*s.EndDate).Before(from) {
		return nil
	}

	err := uc.checker.CheckSubscription(ctx, s.CourtID, s.Weekday, s.Range, from, s.EndDate, &s.ID)
	if err == nil {
		return nil
	}
	if c, ok := conflicts.AsConflict(err); ok {
		uc.logger.Warn("OverrideSubscription: activating subscription id=%d over a taken slot: %s id=%d on %s (%s)",
			s.ID, c.Kind, c.EntityID, c.Date.Format(domain.DateFormat), c.Range)
		return nil
	}
	return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
}

func bookingTransitionEvent(from, to domain.BookingStatus) (events.Type, bool) {
	switch {
	case from == to:
		return "", false
	case to == domain.BookingStatusCancelled:
		return events.BookingCancelled, true
	case from == domain.BookingStatusCancelled:
		return events.BookingReactivated, true
	}
	return "", false
}

func subscriptionTransitionEvent(from, to domain.SubscriptionStatus) (events.Type, bool) {
	switch {
	case from == to:
		return "", false
	case to == domain.SubscriptionStatusCancelled:
		return events.SubscriptionCancelled, true
	case to == domain.SubscriptionStatusExpired:
		return events.SubscriptionExpired, true
	case to == domain.SubscriptionStatusActive && from == domain.SubscriptionStatusPending:
		return events.SubscriptionCreated, true
	case to == domain.SubscriptionStatusActive:
		return events.SubscriptionReactivated, true
	}
	return "", false
}
