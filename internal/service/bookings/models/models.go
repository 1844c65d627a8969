package models

import (
	"errors"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

var (
	// ErrInvalidStatus unknown booking status
	ErrInvalidStatus = errors.New("invalid booking status")
)

// GetUserBookingsRequest booking history request
type GetUserBookingsRequest struct {
	Actor  domain.Actor
	UserID int64
	Status *string
}

// GetCourtBookingsRequest admin view of one court day
type GetCourtBookingsRequest struct {
	Actor   domain.Actor
	CourtID int64
	Date    time.Time
}

// BookingResponse booking as returned by the API
type BookingResponse struct {
	ID              int64   `json:"id"`
	CourtID         int64   `json:"courtId"`
	UserID          int64   `json:"userId"`
	Sport           string  `json:"sport"`
	Date            string  `json:"date"`      // "2024-06-03"
	StartTime       string  `json:"startTime"` // "18:00"
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	PaymentMethod   string  `json:"paymentMethod"`
	PaymentID       *string `json:"paymentId,omitempty"`
	CustomerName    *string `json:"customerName,omitempty"`
	Price           float64 `json:"price"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // RFC 3339

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking converts a domain booking into its API form
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		CourtID:         b.CourtID,
		UserID:          b.UserID,
		Sport:           string(b.Sport),
		Date:            b.Date.Format(domain.DateFormat),
		StartTime:       b.Range.Start.String(),
		EndTime:         b.Range.End.String(),
		DurationMinutes: b.Range.DurationMinutes(),
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		PaymentMethod:   string(b.PaymentMethod),
		PaymentID:       b.PaymentID,
		CustomerName:    b.CustomerName,
		Price:           b.Price,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainBookingList converts a list, never returning a nil slice
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if r := FromDomainBooking(booking); r != nil {
			resp.Bookings = append(resp.Bookings, *r)
		}
	}

	return resp
}

// ToDomainBookingStatus parses a status string
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
