package cancel_subscription

import (
	"context"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/discounts"
)

// SubscriptionRepository subscriptions storage
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SubscriptionStatus) error
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
