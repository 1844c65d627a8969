package create_subscription

import (
	"errors"
	"fmt"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	createSubscription "github.com/Brian13b/QuicoBasquetProject/internal/usecase/create_subscription"
	"github.com/Brian13b/QuicoBasquetProject/pkg/types"
)

var (
	errInvalidTime = errors.New("invalid time, expected HH:MM")
	errInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// CreateSubscriptionRequest HTTP request model
type CreateSubscriptionRequest struct {
	CourtID       int64   `json:"courtId"`
	Sport         string  `json:"sport"`
	Weekday       int     `json:"weekday"`   // 0 = lunes
	StartTime     string  `json:"startTime"` // "20:00"
	EndTime       string  `json:"endTime"`
	StartDate     string  `json:"startDate"`         // "2024-06-03"
	EndDate       *string `json:"endDate,omitempty"` // absent = until cancelled
	PaymentMethod string  `json:"paymentMethod"`
	CustomerName  *string `json:"customerName,omitempty"`
}

// ToUseCaseRequest parses dates and times; the caller comes from the auth context
func (r *CreateSubscriptionRequest) ToUseCaseRequest(userID int64) (*createSubscription.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate: %v", errInvalidDate, err)
	}

	var endDate *time.Time
	if r.EndDate != nil {
		d, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: endDate: %v", errInvalidDate, err)
		}
		endDate = &d
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createSubscription.Request{
		UserID:        userID,
		CourtID:       r.CourtID,
		Sport:         r.Sport,
		Weekday:       r.Weekday,
		StartTime:     start,
		EndTime:       end,
		StartDate:     startDate,
		EndDate:       endDate,
		PaymentMethod: r.PaymentMethod,
		CustomerName:  r.CustomerName,
	}, nil
}
