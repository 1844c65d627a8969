package renew_subscription

import (
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	renewSubscription "github.com/Brian13b/QuicoBasquetProject/internal/usecase/renew_subscription"
)

// RenewSubscriptionRequest HTTP request model
type RenewSubscriptionRequest struct {
	EndDate string `json:"endDate"` // "2024-12-30"
}

// ToUseCaseRequest parses the new end date
func (r *RenewSubscriptionRequest) ToUseCaseRequest(actor domain.Actor, subscriptionID int64) (*renewSubscription.Request, error) {
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &renewSubscription.Request{
		Actor:          actor,
		SubscriptionID: subscriptionID,
		EndDate:        endDate,
	}, nil
}
