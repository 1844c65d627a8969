package discounts

import (
	"context"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

// SubscriptionRepository subscriptions whose discount is rebalanced
type SubscriptionRepository interface {
	ListActiveByUser(ctx context.Context, userID int64) ([]*domain.Subscription, error)
	UpdatePricing(ctx context.Context, id int64, discountPercent, monthlyPrice float64) error
}

// CourtRepository court prices used to recompute monthly prices
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// PricingEngine monthly price calculator
type PricingEngine interface {
	MonthlyPrice(court *domain.Court, sport domain.Sport, durationMinutes int, discountPercent float64) (float64, error)
}

// Logger logging facade
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
