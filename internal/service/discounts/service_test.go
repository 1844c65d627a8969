package discounts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/pricing"
	"github.com/Brian13b/QuicoBasquetProject/pkg/logger"
)

type subscriptionRepoStub struct {
	active    []*domain.Subscription
	listErr   error
	updated   map[int64][2]float64
	updateErr error
}

func (s *subscriptionRepoStub) ListActiveByUser(_ context.Context, userID int64) ([]*domain.Subscription, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []*domain.Subscription
	for _, sub := range s.active {
		if sub.UserID == userID && sub.IsActive() {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *subscriptionRepoStub) UpdatePricing(_ context.Context, id int64, discount, price float64) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if s.updated == nil {
		s.updated = make(map[int64][2]float64)
	}
	s.updated[id] = [2]float64{discount, price}
	return nil
}

type courtRepoStub struct {
	court *domain.Court
	calls int
}

func (c *courtRepoStub) GetByID(context.Context, int64) (*domain.Court, error) {
	c.calls++
	return c.court, nil
}

func court() *domain.Court {
	return &domain.Court{
		ID: 1,
		Pricing: map[domain.Sport]domain.SportPricing{
			domain.SportBasketball: {HourlyPrice: 26000},
		},
		SubscriptionDiscountPercent: 5,
	}
}

func sub(id int64, weekday domain.Weekday) *domain.Subscription {
	return &domain.Subscription{
		ID:           id,
		CourtID:      1,
		UserID:       7,
		Sport:        domain.SportBasketball,
		Weekday:      weekday,
		Range:        domain.MustTimeRange("18:00", "19:00"),
		Status:       domain.SubscriptionStatusActive,
		MonthlyPrice: 106951,
	}
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, 0.0, TierFor(0))
	assert.Equal(t, 0.0, TierFor(1))
	assert.Equal(t, 10.0, TierFor(2))
	assert.Equal(t, 15.0, TierFor(3))
	assert.Equal(t, 15.0, TierFor(5))
}

func TestRecompute(t *testing.T) {
	active := []*domain.Subscription{sub(1, domain.Monday), sub(2, domain.Monday)}
	assert.Equal(t, 0.0, Recompute(active, nil), "same weekday twice counts once")

	wednesday := domain.Wednesday
	assert.Equal(t, 10.0, Recompute(active, &wednesday))

	cancelled := sub(3, domain.Friday)
	cancelled.Status = domain.SubscriptionStatusCancelled
	assert.Equal(t, 10.0, Recompute(append(active, cancelled), &wednesday))
}

func TestService_RecomputeForUser(t *testing.T) {
	repo := &subscriptionRepoStub{active: []*domain.Subscription{sub(1, domain.Monday), sub(2, domain.Tuesday)}}
	svc := NewService(repo, &courtRepoStub{court: court()}, pricing.NewEngine(0), logger.Nop())

	friday := domain.Friday
	tier, err := svc.RecomputeForUser(context.Background(), 7, &friday)
	require.NoError(t, err)
	assert.Equal(t, 15.0, tier)

	repo.listErr = errors.New("db down")
	_, err = svc.RecomputeForUser(context.Background(), 7, nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_RebalanceAppliesToAllActive(t *testing.T) {
	repo := &subscriptionRepoStub{active: []*domain.Subscription{
		sub(1, domain.Monday),
		sub(2, domain.Wednesday),
	}}
	courts := &courtRepoStub{court: court()}
	svc := NewService(repo, courts, pricing.NewEngine(0), logger.Nop())

	result, err := svc.Rebalance(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 10.0, result.DiscountPercent)
	assert.ElementsMatch(t, []int64{1, 2}, result.Updated)
	assert.Equal(t, [2]float64{10, 96255.90}, repo.updated[1])
	assert.Equal(t, [2]float64{10, 96255.90}, repo.updated[2])
	assert.Equal(t, 1, courts.calls, "court is fetched once per rebalance")
}

func TestService_RebalanceSkipsUnchanged(t *testing.T) {
	repo := &subscriptionRepoStub{active: []*domain.Subscription{sub(1, domain.Monday)}}
	svc := NewService(repo, &courtRepoStub{court: court()}, pricing.NewEngine(0), logger.Nop())

	result, err := svc.Rebalance(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.DiscountPercent)
	assert.Empty(t, result.Updated)
	assert.Equal(t, 106951.0, result.MonthlyPrices[1])
}

func TestService_RebalanceUpdateError(t *testing.T) {
	repo := &subscriptionRepoStub{
		active:    []*domain.Subscription{sub(1, domain.Monday), sub(2, domain.Tuesday)},
		updateErr: errors.New("serialization failure"),
	}
	svc := NewService(repo, &courtRepoStub{court: court()}, pricing.NewEngine(0), logger.Nop())

	_, err := svc.Rebalance(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
}
