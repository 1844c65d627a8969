package discounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

// ErrInternal storage or pricing failure during a rebalance
var ErrInternal = errors.New("discounts: internal error")

// Rebalance outcome of applying a tier to all of a user's active subscriptions
type Rebalance struct {
	UserID          int64
	DiscountPercent float64
	// MonthlyPrices new monthly price per active subscription id
	MonthlyPrices map[int64]float64
	// Updated ids whose stored discount or price changed
	Updated []int64
}

// Service multi-day discount tiers
type Service struct {
	subscriptionRepo SubscriptionRepository
	courtRepo        CourtRepository
	pricing          PricingEngine
	logger           Logger
}

// NewService creates a discount service
func NewService(
	subscriptionRepo SubscriptionRepository,
	courtRepo CourtRepository,
	pricing PricingEngine,
	logger Logger,
) *Service {
	return &Service{
		subscriptionRepo: subscriptionRepo,
		courtRepo:        courtRepo,
		pricing:          pricing,
		logger:           logger,
	}
}

// RecomputeForUser tier the user would have with candidate added to the active set
func (s *Service) RecomputeForUser(ctx context.Context, userID int64, candidate *domain.Weekday) (float64, error) {
	active, err := s.subscriptionRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: RecomputeForUser - list subscriptions: %v", ErrInternal, err)
	}
	return Recompute(active, candidate), nil
}

// Rebalance applies the user's current tier to every active subscription and reprices them
// Must run inside the transaction that changed the user's subscription set
func (s *Service) Rebalance(ctx context.Context, userID int64) (*Rebalance, error) {
	active, err := s.subscriptionRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: Rebalance - list subscriptions: %v", ErrInternal, err)
	}

	result := &Rebalance{
		UserID:          userID,
		DiscountPercent: Recompute(active, nil),
		MonthlyPrices:   make(map[int64]float64, len(active)),
	}

	courts := make(map[int64]*domain.Court)
	for _, sub := range active {
		court, ok := courts[sub.CourtID]
		if !ok {
			court, err = s.courtRepo.GetByID(ctx, sub.CourtID)
			if err != nil {
				return nil, fmt.Errorf("%w: Rebalance - get court id=%d: %v", ErrInternal, sub.CourtID, err)
			}
			courts[sub.CourtID] = court
		}

		price, err := s.pricing.MonthlyPrice(court, sub.Sport, sub.Range.DurationMinutes(), result.DiscountPercent)
		if err != nil {
			return nil, fmt.Errorf("%w: Rebalance - price subscription id=%d: %v", ErrInternal, sub.ID, err)
		}
		result.MonthlyPrices[sub.ID] = price

		if sub.DiscountPercent == result.DiscountPercent && sub.MonthlyPrice == price {
			continue
		}
		if err := s.subscriptionRepo.UpdatePricing(ctx, sub.ID, result.DiscountPercent, price); err != nil {
			return nil, fmt.Errorf("%w: Rebalance - update subscription id=%d: %v", ErrInternal, sub.ID, err)
		}
		result.Updated = append(result.Updated, sub.ID)
	}

	if len(result.Updated) > 0 {
		s.logger.Info("Rebalance: user=%d discount=%.0f%% applied to %d of %d active subscriptions",
			userID, result.DiscountPercent, len(result.Updated), len(active))
	}
	return result, nil
}
