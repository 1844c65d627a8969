package override_subscription

import (
	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	adminOverride "github.com/Brian13b/QuicoBasquetProject/internal/usecase/admin_override"
)

// OverrideSubscriptionRequest HTTP request model, absent fields stay untouched
type OverrideSubscriptionRequest struct {
	Status          *string  `json:"status,omitempty"`
	PaymentStatus   *string  `json:"paymentStatus,omitempty"`
	MonthlyPrice    *float64 `json:"monthlyPrice,omitempty"`
	DiscountPercent *float64 `json:"discountPercent,omitempty"`
}

// ToUseCaseRequest adds the caller and the subscription id
func (r *OverrideSubscriptionRequest) ToUseCaseRequest(actor domain.Actor, subscriptionID int64) *adminOverride.SubscriptionRequest {
	return &adminOverride.SubscriptionRequest{
		Actor:           actor,
		SubscriptionID:  subscriptionID,
		Status:          r.Status,
		PaymentStatus:   r.PaymentStatus,
		MonthlyPrice:    r.MonthlyPrice,
		DiscountPercent: r.DiscountPercent,
	}
}
