package admin_override

import (
	"fmt"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

func validateBookingRequest(req *BookingRequest) error {
	if !req.Actor.IsAdmin() {
		return ErrAccessDenied
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.Status == nil && req.PaymentStatus == nil && req.Price == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Status != nil && !domain.BookingStatus(*req.Status).IsValid() {
		return fmt.Errorf("%w: unknown booking status %q", ErrInvalidInput, *req.Status)
	}
	if req.PaymentStatus != nil && !domain.BookingPaymentStatus(*req.PaymentStatus).IsValid() {
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, *req.PaymentStatus)
	}
	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateSubscriptionRequest(req *SubscriptionRequest) error {
	if !req.Actor.IsAdmin() {
		return ErrAccessDenied
	}
	if req.SubscriptionID <= 0 {
		return fmt.Errorf("%w: subscriptionID must be positive", ErrInvalidInput)
	}
	if req.Status == nil && req.PaymentStatus == nil && req.MonthlyPrice == nil && req.DiscountPercent == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Status != nil && !domain.SubscriptionStatus(*req.Status).IsValid() {
		return fmt.Errorf("%w: unknown subscription status %q", ErrInvalidInput, *req.Status)
	}
	if req.PaymentStatus != nil && !domain.SubscriptionPaymentStatus(*req.PaymentStatus).IsValid() {
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, *req.PaymentStatus)
	}
	if req.MonthlyPrice != nil && *req.MonthlyPrice <= 0 {
		return fmt.Errorf("%w: monthly price must be positive", ErrInvalidInput)
	}
	if req.DiscountPercent != nil && (*req.DiscountPercent < 0 || *req.DiscountPercent > domain.MaxDiscountPercent) {
		return fmt.Errorf("%w: discount must be between 0 and %d", ErrInvalidInput, domain.MaxDiscountPercent)
	}
	return nil
}
