package create_subscription

import (
	"context"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	"github.com/Brian13b/QuicoBasquetProject/internal/integrations/userservice"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/discounts"
)

// SubscriptionRepository subscriptions storage
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
}

// CourtRepository courts storage with the per-court lock
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	LockForUpdate(ctx context.Context, courtID int64) error
}

// ConflictChecker subscription collision check
type ConflictChecker interface {
	CheckSubscription(
		ctx context.Context,
		courtID int64,
		weekday domain.Weekday,
		rng domain.TimeRange,
		windowStart time.Time,
		windowEnd *time.Time,
		excludeSubscriptionID *int64,
	) error
}

// PricingEngine monthly prices
type PricingEngine interface {
	MonthlyPrice(court *domain.Court, sport domain.Sport, durationMinutes int, discountPercent float64) (float64, error)
}

// DiscountService multi-day tier discounts
type DiscountService interface {
	RecomputeForUser(ctx context.Context, userID int64, candidate *domain.Weekday) (float64, error)
	Rebalance(ctx context.Context, userID int64) (*discounts.Rebalance, error)
}

// UserServiceClient user service client
type UserServiceClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*userservice.User, error)
}

// EventPublisher lifecycle events sink
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TransactionManager transactions
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider current time source
type TimeProvider interface {
	Now() time.Time
}

// Logger logging facade
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
