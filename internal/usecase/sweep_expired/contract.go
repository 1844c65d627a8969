package sweep_expired

import (
	"context"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/subscription"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/discounts"
)

// SubscriptionRepository subscriptions storage
type SubscriptionRepository interface {
	ExpireEndedBefore(ctx context.Context, asOf time.Time) ([]subscription.Expired, error)
}

// DiscountService tier rebalancing
type DiscountService interface {
	Rebalance(ctx context.Context, userID int64) (*discounts.Rebalance, error)
}

// MetricsRecorder expired subscriptions counter
type MetricsRecorder interface {
	RecordExpired(trigger string, n int)
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
