package reactivate_subscription

import (
	"context"

	reactivateSubscription "github.com/Brian13b/QuicoBasquetProject/internal/usecase/reactivate_subscription"
)

type ReactivateSubscriptionUseCase interface {
	Execute(ctx context.Context, req *reactivateSubscription.Request) (*reactivateSubscription.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
