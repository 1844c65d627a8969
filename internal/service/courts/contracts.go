package courts

import (
	"context"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

// CourtRepository courts storage
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	List(ctx context.Context) ([]*domain.Court, error)
	UpsertSportPrice(ctx context.Context, courtID int64, sport domain.Sport, pricing domain.SportPricing) error
	UpdateSubscriptionDiscount(ctx context.Context, courtID int64, percent float64) error
}

// PricingEngine session and monthly prices
type PricingEngine interface {
	SessionPrice(court *domain.Court, sport domain.Sport, durationMinutes int, isSubscription bool) (float64, error)
	MonthlyPrice(court *domain.Court, sport domain.Sport, durationMinutes int, discountPercent float64) (float64, error)
}

// DiscountCalculator multi-day tier lookup
type DiscountCalculator interface {
	RecomputeForUser(ctx context.Context, userID int64, candidate *domain.Weekday) (float64, error)
}

// TransactionManager transactions
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger logging facade
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
