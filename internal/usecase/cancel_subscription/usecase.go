package cancel_subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	subscriptionRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/subscription"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/discounts"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
	"github.com/Brian13b/QuicoBasquetProject/pkg/clock"
)

// UseCase cancels a subscription and lowers the user's tier if it drops a weekday
type UseCase struct {
	subscriptionRepo SubscriptionRepository
	discounts        DiscountService
	publisher        EventPublisher
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case
func NewUseCase(
	subscriptionRepo SubscriptionRepository,
	discounts DiscountService,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		subscriptionRepo: subscriptionRepo,
		discounts:        discounts,
		publisher:        publisher,
		txManager:        txManager,
		timeProvider:     clock.Real{},
		logger:           logger,
	}
}

// Execute frees the weekly slot, no conflict check is needed
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelSubscription: subscription=%d by user=%d", req.SubscriptionID, req.Actor.UserID)

	if req.SubscriptionID <= 0 {
		return nil, fmt.Errorf("%w: subscriptionID must be positive", ErrInvalidInput)
	}

	var (
		sub *domain.Subscription
		rb  *discounts.Rebalance
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		s, err := uc.subscriptionRepo.GetByID(txCtx, req.SubscriptionID)
		if err != nil {
			if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
				return ErrSubscriptionNotFound
			}
			return fmt.Errorf("%w: failed to get subscription: %v", ErrInternal, err)
		}

		if !req.Actor.CanAccess(s.UserID) {
			uc.logger.Warn("CancelSubscription: access denied for user=%d to subscription id=%d", req.Actor.UserID, s.ID)
			return ErrAccessDenied
		}
		if !s.CanBeCancelled() {
			uc.logger.Warn("CancelSubscription: subscription id=%d has status=%s", s.ID, s.Status)
			return fmt.Errorf("%w: status %s", ErrInvalidTransition, s.Status)
		}

		if err := uc.subscriptionRepo.UpdateStatus(txCtx, s.ID, domain.SubscriptionStatusCancelled); err != nil {
			uc.logger.Error("CancelSubscription: failed to update subscription id=%d: %v", s.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
		s.Status = domain.SubscriptionStatusCancelled

		rb, err = uc.discounts.Rebalance(txCtx, s.UserID)
		if err != nil {
			return fmt.Errorf("%w: failed to rebalance discounts: %v", ErrInternal, err)
		}

		sub = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelSubscription: subscription id=%d cancelled, user=%d tier=%.0f%%", sub.ID, sub.UserID, rb.DiscountPercent)

	if err := uc.publisher.Publish(ctx, events.ForSubscription(events.SubscriptionCancelled, sub, uc.timeProvider.Now())); err != nil {
		uc.logger.Error("CancelSubscription: failed to publish event for subscription id=%d: %v", sub.ID, err)
	}

	return &Response{
		SubscriptionResponse: *models.FromDomainSubscription(sub),
		UserDiscountPercent:  rb.DiscountPercent,
		Rebalanced:           rb.Updated,
	}, nil
}
