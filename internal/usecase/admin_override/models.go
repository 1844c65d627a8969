package admin_override

import "github.com/Brian13b/QuicoBasquetProject/internal/domain"

// BookingRequest administrative edit of a booking, nil fields stay untouched
type BookingRequest struct {
	Actor         domain.Actor
	BookingID     int64
	Status        *string
	PaymentStatus *string
	Price         *float64
}

// SubscriptionRequest administrative edit of a subscription, nil fields stay untouched
type SubscriptionRequest struct {
	Actor           domain.Actor
	SubscriptionID  int64
	Status          *string
	PaymentStatus   *string
	MonthlyPrice    *float64
	DiscountPercent *float64
}
