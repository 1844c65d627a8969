package renew_subscription

import (
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
)

// Request renewal with a new end date
type Request struct {
	Actor          domain.Actor
	SubscriptionID int64
	EndDate        time.Time
}

// Response renewed subscription
type Response struct {
	models.SubscriptionResponse

	Rebalanced []int64 `json:"rebalanced,omitempty"`
}
