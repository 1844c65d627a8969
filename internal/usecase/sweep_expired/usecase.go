package sweep_expired

import (
	"context"
	"fmt"
	"slices"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/subscription"
	"github.com/Brian13b/QuicoBasquetProject/pkg/clock"
)

// UseCase expires subscriptions whose end date passed
type UseCase struct {
	subscriptionRepo SubscriptionRepository
	discounts        DiscountService
	metrics          MetricsRecorder
	publisher        EventPublisher
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case
func NewUseCase(
	subscriptionRepo SubscriptionRepository,
	discounts DiscountService,
	metrics MetricsRecorder,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		subscriptionRepo: subscriptionRepo,
		discounts:        discounts,
		metrics:          metrics,
		publisher:        publisher,
		txManager:        txManager,
		timeProvider:     clock.Real{},
		logger:           logger,
	}
}

// Execute flips activa subscriptions with end_date < asOf to vencida and rebalances the
// discount of every affected user. A second run with the same asOf changes nothing.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Trigger == "" {
		return nil, fmt.Errorf("%w: trigger is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	asOf := domain.DateOnly(now)
	if !req.AsOf.IsZero() {
		asOf = domain.DateOnly(req.AsOf)
	}

	var (
		expired []subscription.Expired
		users   []int64
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		expired, err = uc.subscriptionRepo.ExpireEndedBefore(txCtx, asOf)
		if err != nil {
			uc.logger.Error("SweepExpired: failed to expire subscriptions: %v", err)
			return fmt.Errorf("%w: failed to expire subscriptions: %v", ErrInternal, err)
		}

		users = affectedUsers(expired)
		for _, userID := range users {
			if _, err := uc.discounts.Rebalance(txCtx, userID); err != nil {
				return fmt.Errorf("%w: failed to rebalance user=%d: %v", ErrInternal, userID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.RecordExpired(req.Trigger, len(expired))

	resp := &Response{
		AsOf:            asOf.Format(domain.DateFormat),
		Expired:         make([]int64, 0, len(expired)),
		RebalancedUsers: users,
	}
	for _, e := range expired {
		resp.Expired = append(resp.Expired, e.ID)
		if err := uc.publisher.Publish(ctx, events.ForExpiredSubscription(e.ID, e.UserID, e.CourtID, now)); err != nil {
			uc.logger.Error("SweepExpired: failed to publish event for subscription id=%d: %v", e.ID, err)
		}
	}

	if len(expired) > 0 {
		uc.logger.Info("SweepExpired: trigger=%s asOf=%s expired=%d users=%d",
			req.Trigger, resp.AsOf, len(expired), len(users))
	}

	return resp, nil
}

// affectedUsers distinct user ids, sorted
func affectedUsers(expired []subscription.Expired) []int64 {
	users := make([]int64, 0, len(expired))
	for _, e := range expired {
		users = append(users, e.UserID)
	}
	slices.Sort(users)
	return slices.Compact(users)
}
