package admin_override

import (
	"context"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/discounts"
)

// BookingRepository bookings storage
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.BookingPaymentStatus) error
	UpdatePrice(ctx context.Context, id int64, price float64) error
}

// SubscriptionRepository subscriptions storage
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SubscriptionStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.SubscriptionPaymentStatus) error
	UpdatePrice(ctx context.Context, id int64, monthlyPrice float64) error
	UpdateDiscount(ctx context.Context, id int64, discountPercent float64) error
}

// ConflictChecker subscription collision check, used to report approvals over a taken slot
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

// DiscountService tier rebalancing
type DiscountService interface {
	Rebalance(ctx context.Context, userID int64) (*discounts.Rebalance, error)
}

// EventPublisher lifecycle events sink
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TransactionManager transactions
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
