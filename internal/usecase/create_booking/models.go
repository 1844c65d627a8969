package create_booking

import (
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/pkg/types"
)

// Request booking creation request
type Request struct {
	UserID        int64            // caller
	CourtID       int64            // court
	Sport         string           // basquet | voley
	Date          time.Time        // date the booking starts on
	StartTime     types.TimeString // "18:00"
	EndTime       types.TimeString // "19:30", "00:00" for midnight
	PaymentMethod string           // efectivo | transferencia
	CustomerName  *string          // name shown to the court staff, optional
}

// PaymentInstructions how to pay a booking made with transferencia
type PaymentInstructions struct {
	domain.BankAccount
	Amount float64 `json:"amount"`
}

// Response created booking
type Response struct {
	ID              int64
	CourtID         int64
	UserID          int64
	Sport           string
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          string
	PaymentStatus   string
	PaymentMethod   string
	CustomerName    *string
	Price           float64

	Payment *PaymentInstructions // only for transferencia

	// UserCheckSkipped the user service was unreachable and the blocked flag was not verified
	UserCheckSkipped bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
