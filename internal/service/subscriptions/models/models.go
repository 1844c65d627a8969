package models

import (
	"errors"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

var ErrInvalidStatus = errors.New("invalid subscription status")

// GetUserSubscriptionsRequest subscriptions of one user
type GetUserSubscriptionsRequest struct {
	Actor  domain.Actor
	UserID int64
	Status *string
}

// SubscriptionResponse subscription as returned by the API
type SubscriptionResponse struct {
	ID              int64   `json:"id"`
	CourtID         int64   `json:"courtId"`
	UserID          int64   `json:"userId"`
	Sport           string  `json:"sport"`
	Weekday         int     `json:"weekday"` // 0 = Monday
	WeekdayName     string  `json:"weekdayName"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	StartDate       string  `json:"startDate"`
	EndDate         *string `json:"endDate,omitempty"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	PaymentMethod   string  `json:"paymentMethod"`
	DiscountPercent float64 `json:"discountPercent"`
	MonthlyPrice    float64 `json:"monthlyPrice"`
	CustomerName    *string `json:"customerName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubscriptionListResponse list of subscriptions
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

// FromDomainSubscription converts a domain subscription into its API form
func FromDomainSubscription(s *domain.Subscription) *SubscriptionResponse {
	if s == nil {
		return nil
	}

	resp := &SubscriptionResponse{
		ID:              s.ID,
		CourtID:         s.CourtID,
		UserID:          s.UserID,
		Sport:           string(s.Sport),
		Weekday:         int(s.Weekday),
		WeekdayName:     s.Weekday.String(),
		StartTime:       s.Range.Start.String(),
		EndTime:         s.Range.End.String(),
		StartDate:       s.StartDate.Format(domain.DateFormat),
		Status:          string(s.Status),
		PaymentStatus:   string(s.PaymentStatus),
		PaymentMethod:   string(s.PaymentMethod),
		DiscountPercent: s.DiscountPercent,
		MonthlyPrice:    s.MonthlyPrice,
		CustomerName:    s.CustomerName,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}

	if s.EndDate != nil {
		end := s.EndDate.Format(domain.DateFormat)
		resp.EndDate = &end
	}

	return resp
}

// FromDomainSubscriptionList converts a list, never returning a nil slice
func FromDomainSubscriptionList(subs []*domain.Subscription) *SubscriptionListResponse {
	resp := &SubscriptionListResponse{Subscriptions: make([]SubscriptionResponse, 0, len(subs))}
	for _, s := range subs {
		if r := FromDomainSubscription(s); r != nil {
			resp.Subscriptions = append(resp.Subscriptions, *r)
		}
	}
	return resp
}

// ToDomainSubscriptionStatus parses a status string
func ToDomainSubscriptionStatus(status string) (domain.SubscriptionStatus, error) {
	s := domain.SubscriptionStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
