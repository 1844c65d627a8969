package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pendiente"
	BookingStatusConfirmed BookingStatus = "confirmada"
	BookingStatusCancelled BookingStatus = "cancelada"
	BookingStatusCompleted BookingStatus = "completada"
)

// IsValid returns true for known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// BookingPaymentStatus represents the payment state of a booking
type BookingPaymentStatus string

const (
	BookingPaymentPending   BookingPaymentStatus = "pendiente"
	BookingPaymentPaid      BookingPaymentStatus = "pagado"
	BookingPaymentCancelled BookingPaymentStatus = "cancelado"
)

// IsValid returns true for known payment statuses
func (s BookingPaymentStatus) IsValid() bool {
	switch s {
	case BookingPaymentPending, BookingPaymentPaid, BookingPaymentCancelled:
		return true
	}
	return false
}

// PaymentMethod how the customer pays
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "efectivo"
	PaymentTransfer    PaymentMethod = "transferencia"
	PaymentMercadoPago PaymentMethod = "mercadopago"
)

// IsValid returns true for known payment methods
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentMercadoPago:
		return true
	}
	return false
}

// RequiresApproval online payments wait for gateway approval before the reservation is active
func (m PaymentMethod) RequiresApproval() bool {
	return m == PaymentMercadoPago
}

// Booking represents a one-off court reservation
type Booking struct {
	ID      int64
	CourtID int64
	UserID  int64
	Sport   Sport
	Date    time.Time // calendar date, a range crossing midnight still belongs to this date
	Range   TimeRange

	Status        BookingStatus
	PaymentStatus BookingPaymentStatus
	PaymentMethod PaymentMethod
	PaymentID     *string
	CustomerName  *string
	Price         float64

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the booking still occupies the court
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// CanBeReactivated returns true only for cancelled bookings
func (b *Booking) CanBeReactivated() bool {
	return b.Status == BookingStatusCancelled
}

// IsOwnedBy returns true if userID made the booking
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}
