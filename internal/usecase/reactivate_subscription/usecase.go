package reactivate_subscription

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

// UseCase brings back a cancelled subscription when none of its remaining occurrences is taken
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

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReactivateSubscription: subscription=%d by user=%d", req.SubscriptionID, req.Actor.UserID)

	if req.SubscriptionID <= 0 {
		return nil, fmt.Errorf("%w: subscriptionID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	today := domain.DateOnly(now)

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
			uc.logger.Warn("ReactivateSubscription: access denied for user=%d to subscription id=%d", req.Actor.UserID, s.ID)
			return ErrAccessDenied
		}
		if !s.CanBeReactivated() {
			return fmt.Errorf("%w: status %s", ErrInvalidTransition, s.Status)
		}
		if s.EndDate != nil && domain.DateOnly(*s.EndDate).Before(today) {
			return ErrWindowEnded
		}

		if err := uc.courtLocker.LockForUpdate(txCtx, s.CourtID); err != nil {
			uc.logger.Error("ReactivateSubscription: failed to lock court id=%d: %v", s.CourtID, err)
			return fmt.Errorf("%w: failed to lock court: %v", ErrInternal, err)
		}

		// occurrences already played cannot collide with anything new
		from := domain.DateOnly(s.StartDate)
		if from.Before(today) {
			from = today
		}

		if err := uc.checker.CheckSubscription(txCtx, s.CourtID, s.Weekday, s.Range, from, s.EndDate, &s.ID); err != nil {
			if conflict, ok := conflicts.AsConflict(err); ok {
				uc.logger.Warn("ReactivateSubscription: subscription id=%d collides on %s with %s id=%d",
					s.ID, conflict.Date.Format(domain.DateFormat), conflict.Kind, conflict.EntityID)
				return fmt.Errorf("%w: %w", ErrReactivationConflict, conflict)
			}
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		if err := uc.subscriptionRepo.UpdateStatus(txCtx, s.ID, domain.SubscriptionStatusActive); err != nil {
			uc.logger.Error("ReactivateSubscription: failed to update subscription id=%d: %v", s.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
		s.Status = domain.SubscriptionStatusActive

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

	uc.logger.Info("ReactivateSubscription: subscription id=%d is activa again, discount=%.0f%%", sub.ID, sub.DiscountPercent)

	if err := uc.publisher.Publish(ctx, events.ForSubscription(events.SubscriptionReactivated, sub, now)); err != nil {
		uc.logger.Error("ReactivateSubscription: failed to publish event for subscription id=%d: %v", sub.ID, err)
	}

	return &Response{
		SubscriptionResponse: *models.FromDomainSubscription(sub),
		Rebalanced:           rebalanced,
	}, nil
}
