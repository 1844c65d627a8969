package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	createBooking "github.com/Brian13b/QuicoBasquetProject/internal/usecase/create_booking"
	"github.com/Brian13b/QuicoBasquetProject/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID       int64   `json:"courtId"`
	Sport         string  `json:"sport"`
	Date          string  `json:"date"`      // "2024-06-03"
	StartTime     string  `json:"startTime"` // "18:00"
	EndTime       string  `json:"endTime"`   // "19:30"
	PaymentMethod string  `json:"paymentMethod"`
	CustomerName  *string `json:"customerName,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64                              `json:"id"`
	CourtID          int64                              `json:"courtId"`
	UserID           int64                              `json:"userId"`
	Sport            string                             `json:"sport"`
	Date             string                             `json:"date"`
	StartTime        string                             `json:"startTime"`
	EndTime          string                             `json:"endTime"`
	DurationMinutes  int                                `json:"durationMinutes"`
	Status           string                             `json:"status"`
	PaymentStatus    string                             `json:"paymentStatus"`
	PaymentMethod    string                             `json:"paymentMethod"`
	CustomerName     *string                            `json:"customerName,omitempty"`
	Price            float64                            `json:"price"`
	Payment          *createBooking.PaymentInstructions `json:"payment,omitempty"`
	UserCheckSkipped bool                               `json:"userCheckSkipped,omitempty"`
	CreatedAt        string                             `json:"createdAt"`
	UpdatedAt        string                             `json:"updatedAt"`
}

// errInvalidTime start or end time is not HH:MM
var errInvalidTime = errors.New("invalid time, expected HH:MM")

// ToUseCaseRequest parses date and times; the caller comes from the auth context
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createBooking.Request{
		UserID:        userID,
		CourtID:       r.CourtID,
		Sport:         r.Sport,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		PaymentMethod: r.PaymentMethod,
		CustomerName:  r.CustomerName,
	}, nil
}

// FromUseCaseResponse converts the created booking
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		CourtID:          resp.CourtID,
		UserID:           resp.UserID,
		Sport:            resp.Sport,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		Status:           resp.Status,
		PaymentStatus:    resp.PaymentStatus,
		PaymentMethod:    resp.PaymentMethod,
		CustomerName:     resp.CustomerName,
		Price:            resp.Price,
		Payment:          resp.Payment,
		UserCheckSkipped: resp.UserCheckSkipped,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
