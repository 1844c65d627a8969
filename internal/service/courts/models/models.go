package models

import (
	"sort"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

// SportPriceDTO price list entry of one sport
type SportPriceDTO struct {
	Sport           string  `json:"sport"`
	HourlyPrice     float64 `json:"hourlyPrice"`
	DiscountPercent float64 `json:"discountPercent"`
}

// CourtResponse court with its price list
type CourtResponse struct {
	ID                          int64           `json:"id"`
	Name                        string          `json:"name"`
	Prices                      []SportPriceDTO `json:"prices"`
	SubscriptionDiscountPercent float64         `json:"subscriptionDiscountPercent"`
	UpdatedAt                   time.Time       `json:"updatedAt"`
}

// CourtListResponse list of courts
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// UpdatePricingRequest admin change of a court's prices. Sports not listed keep their price.
type UpdatePricingRequest struct {
	Actor                       domain.Actor    `json:"-"`
	CourtID                     int64           `json:"-"`
	Prices                      []SportPriceDTO `json:"prices"`
	SubscriptionDiscountPercent *float64        `json:"subscriptionDiscountPercent,omitempty"`
}

// QuoteRequest price preview
type QuoteRequest struct {
	CourtID         int64
	Sport           string
	DurationMinutes int
	Subscription    bool
	Weekday         *domain.Weekday // subscriptions: weekday the user is about to add
	UserID          *int64          // subscriptions: user whose tier applies
}

// QuoteResponse price preview
type QuoteResponse struct {
	CourtID         int64    `json:"courtId"`
	Sport           string   `json:"sport"`
	DurationMinutes int      `json:"durationMinutes"`
	SessionPrice    float64  `json:"sessionPrice"`
	DiscountPercent float64  `json:"discountPercent"` // multi-day tier applied to the monthly price
	MonthlyPrice    *float64 `json:"monthlyPrice,omitempty"`
}

// FromDomainCourt converts a court, listing sports in a stable order
func FromDomainCourt(c *domain.Court) *CourtResponse {
	resp := &CourtResponse{
		ID:                          c.ID,
		Name:                        c.Name,
		Prices:                      make([]SportPriceDTO, 0, len(c.Pricing)),
		SubscriptionDiscountPercent: c.SubscriptionDiscountPercent,
		UpdatedAt:                   c.UpdatedAt,
	}

	for sport, p := range c.Pricing {
		resp.Prices = append(resp.Prices, SportPriceDTO{
			Sport:           string(sport),
			HourlyPrice:     p.HourlyPrice,
			DiscountPercent: p.DiscountPercent,
		})
	}
	sort.Slice(resp.Prices, func(i, j int) bool { return resp.Prices[i].Sport < resp.Prices[j].Sport })

	return resp
}
