package override_booking

import (
	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	adminOverride "github.com/Brian13b/QuicoBasquetProject/internal/usecase/admin_override"
)

// OverrideBookingRequest HTTP request model, absent fields stay untouched
type OverrideBookingRequest struct {
	Status        *string  `json:"status,omitempty"`
	PaymentStatus *string  `json:"paymentStatus,omitempty"`
	Price         *float64 `json:"price,omitempty"`
}

// ToUseCaseRequest adds the caller and the booking id
func (r *OverrideBookingRequest) ToUseCaseRequest(actor domain.Actor, bookingID int64) *adminOverride.BookingRequest {
	return &adminOverride.BookingRequest{
		Actor:         actor,
		BookingID:     bookingID,
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
		Price:         r.Price,
	}
}
