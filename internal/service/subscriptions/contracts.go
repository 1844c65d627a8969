package subscriptions

import (
	"context"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

// SubscriptionRepository subscriptions storage
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.SubscriptionStatus) ([]*domain.Subscription, error)
}

// Logger logging facade
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
