package renew_subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	subscriptionRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/subscription"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
	"github.com/Brian13b/QuicoBasquetProject/pkg/clock"
)

// UseCase extends an expired or cancelled subscription to a new end date
type UseCase struct {
	subscriptionRepo SubscriptionRepository
	courtLocker      CourtLocker
	checker          ConflictChecker
	discounts        DiscountService
	publisher        EventPublisher
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case
func NewUseCase(
	subscriptionRepo SubscriptionRepository,
	courtLocker CourtLocker,
	checker ConflictChecker,
	discounts DiscountService,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		subscriptionRepo: subscriptionRepo,
		courtLocker:      courtLocker,
		checker:          checker,
		discounts:        discounts,
		publisher:        publisher,
		txManager:        txManager,
		timeProvider:     clock.Real{},
		logger:           logger,
	}
}

// Execute checks the occurrences from today to the new end date, then reactivates the
// subscription with that end date and a fresh pending payment
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RenewSubscription: subscription=%d until %s by user=%d",
		req.SubscriptionID, req.EndDate.Format(domain.DateFormat), req.Actor.UserID)

	if req.SubscriptionID <= 0 {
		return nil, fmt.Errorf("%w: subscriptionID must be positive", ErrInvalidInput)
	}
	if req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	today := domain.DateOnly(now)
	end := domain.DateOnly(req.EndDate)

	if end.Before(today) {
		return nil, fmt.Errorf("%w: %s is in the past", ErrInvalidEndDate, end.Format(domain.DateFormat))
	}

	var (
		sub        *domain.Subscription
		rebalanced []int64
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		s, err := uc.subscriptionRepo.GetByID(txCtx, req.SubscriptionID)
		if err != nil {
			if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
				return ErrSubscriptionNotFound
			}
			return fmt.Errorf("%w: failed to get subscription: %v", ErrInternal, err)
		}

		if !req.Actor.CanAccess(s.UserID) {
			uc.logger.Warn("RenewSubscription: access denied for user=%d to subscription id=%d", req.Actor.UserID, s.ID)
			return ErrAccessDenied
		}
		if !s.CanBeRenewed() {
			return fmt.Errorf("%w: status %s", ErrInvalidTransition, s.Status)
		}
		if end.Before(domain.DateOnly(s.StartDate)) {
			return fmt.Errorf("%w: before start date %s", ErrInvalidEndDate, s.StartDate.Format(domain.DateFormat))
		}

		if err := uc.courtLocker.LockForUpdate(txCtx, s.CourtID); err != nil {
			uc.logger.Error("RenewSubscription: failed to lock court id=%d: %v", s.CourtID, err)
			return fmt.Errorf("%w: failed to lock court: %v", ErrInternal, err)
		}

		from := domain.DateOnly(s.StartDate)
		if from.Before(today) {
			from = today
		}

		if err := uc.checker.CheckSubscription(txCtx, s.CourtID, s.Weekday, s.Range, from, &end, &s.ID); err != nil {
			if conflict, ok := conflicts.AsConflict(err); ok {
				uc.logger.Warn("RenewSubscription: subscription id=%d collides on %s with %s id=%d",
					s.ID, conflict.Date.Format(domain.DateFormat), conflict.Kind, conflict.EntityID)
				return fmt.Errorf("%w: %w", ErrReactivationConflict, conflict)
			}
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		if err := uc.subscriptionRepo.Renew(txCtx, s.ID, end); err != nil {
			uc.logger.Error("RenewSubscription: failed to renew subscription id=%d: %v", s.ID, err)
			return fmt.Errorf("%w: failed to renew: %v", ErrInternal, err)
		}
		if err := uc.subscriptionRepo.UpdatePaymentStatus(txCtx, s.ID, domain.SubscriptionPaymentPending); err != nil {
			return fmt.Errorf("%w: failed to reset payment status: %v", ErrInternal, err)
		}
		s.Status = domain.SubscriptionStatusActive
		s.PaymentStatus = domain.SubscriptionPaymentPending
		s.EndDate = &end

		rb, err := uc.discounts.Rebalance(txCtx, s.UserID)
		if err != nil {
			return fmt.Errorf("%w: failed to rebalance discounts: %v", ErrInternal, err)
		}
		if price, ok := rb.MonthlyPrices[s.ID]; ok {
			s.DiscountPercent = rb.DiscountPercent
			s.MonthlyPrice = price
		}
		for _, id := range rb.Updated {
			if id != s.ID {
				rebalanced = append(rebalanced, id)
			}
		}

		sub = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RenewSubscription: subscription id=%d renewed until %s", sub.ID, end.Format(domain.DateFormat))

	if err := uc.publisher.Publish(ctx, events.ForSubscription(events.SubscriptionRenewed, sub, now)); err != nil {
		uc.logger.Error("RenewSubscription: failed to publish event for subscription id=%d: %v", sub.ID, err)
	}

	return &Response{
		SubscriptionResponse: *models.FromDomainSubscription(sub),
		Rebalanced:           rebalanced,
	}, nil
}
