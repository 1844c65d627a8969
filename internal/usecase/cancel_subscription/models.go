package cancel_subscription

import (
	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
)

// Request cancellation by owner or admin
type Request struct {
	Actor          domain.Actor
	SubscriptionID int64
}

// Response cancelled subscription and the user's new tier
type Response struct {
	models.SubscriptionResponse

	// UserDiscountPercent tier now applied to the user's remaining active subscriptions
	UserDiscountPercent float64 `json:"userDiscountPercent"`
	Rebalanced          []int64 `json:"rebalanced,omitempty"`
}
