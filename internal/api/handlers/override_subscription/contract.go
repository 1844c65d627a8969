package override_subscription

import (
	"context"

	subscriptionModels "github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
	adminOverride "github.com/Brian13b/QuicoBasquetProject/internal/usecase/admin_override"
)

type OverrideUseCase interface {
	OverrideSubscription(ctx context.Context, req *adminOverride.SubscriptionRequest) (*subscriptionModels.SubscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
