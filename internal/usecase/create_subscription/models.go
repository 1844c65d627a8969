package create_subscription

import (
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/subscriptions/models"
	"github.com/Brian13b/QuicoBasquetProject/pkg/types"
)

// Request weekly subscription request
type Request struct {
	UserID        int64
	CourtID       int64
	Sport         string
	Weekday       int              // 0 = Monday
	StartTime     types.TimeString // "20:00"
	EndTime       types.TimeString
	StartDate     time.Time
	EndDate       *time.Time // nil = until cancelled
	PaymentMethod string     // efectivo | transferencia | mercadopago
	CustomerName  *string
}

// PaymentInstructions how to pay the first month by transferencia
type PaymentInstructions struct {
	domain.BankAccount
	Amount float64 `json:"amount"`
}

// Response created subscription
type Response struct {
	models.SubscriptionResponse

	Payment *PaymentInstructions `json:"payment,omitempty"`

	// Rebalanced other subscriptions of the user whose discount changed
	Rebalanced []int64 `json:"rebalanced,omitempty"`

	UserCheckSkipped bool `json:"userCheckSkipped,omitempty"`
}
