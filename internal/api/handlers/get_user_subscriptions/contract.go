package get_user_subscriptions

import (
	"context"

	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
)

type SubscriptionService interface {
	GetUserSubscriptions(ctx context.Context, req *models.GetUserSubscriptionsRequest) (*models.SubscriptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
