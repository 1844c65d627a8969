package get_subscription

import (
	"context"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
)

type SubscriptionService interface {
	GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.SubscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
