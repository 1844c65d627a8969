package renew_subscription

import (
	"context"

	renewSubscription "github.com/Brian13b/QuicoBasquetProject/internal/usecase/renew_subscription"
)

type RenewSubscriptionUseCase interface {
	Execute(ctx context.Context, req *renewSubscription.Request) (*renewSubscription.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
