package reactivate_subscription

import (
	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
)

// Request reactivation of a cancelled subscription
type Request struct {
	Actor          domain.Actor
	SubscriptionID int64
}

// Response reactivated subscription with its rebalanced price
type Response struct {
	models.SubscriptionResponse

	Rebalanced []int64 `json:"rebalanced,omitempty"`
}
