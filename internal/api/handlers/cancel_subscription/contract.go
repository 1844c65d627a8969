package cancel_subscription

import (
	"context"

	cancelSubscription "github.com/Brian13b/QuicoBasquetProject/internal/usecase/cancel_subscription"
)

type CancelSubscriptionUseCase interface {
	Execute(ctx context.Context, req *cancelSubscription.Request) (*cancelSubscription.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
