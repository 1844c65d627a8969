package domain

import "time"

// Sport a sport played on a court, each with its own price
type Sport string

const (
	SportBasketball Sport = "basquet"
	SportVolleyball Sport = "voley"
)

// Sports every sport the courts can be booked for
var Sports = []Sport{SportBasketball, SportVolleyball}

// IsValid returns true for known sports
func (s Sport) IsValid() bool {
	for _, known := range Sports {
		if s == known {
			return true
		}
	}
	return false
}

// SportPricing hourly price and discount of one sport on one court
type SportPricing struct {
	HourlyPrice     float64
	DiscountPercent float64 // 0-100
}

// Court represents a bookable court
type Court struct {
	ID   int64
	Name string

	Pricing map[Sport]SportPricing

	// SubscriptionDiscountPercent applied on top of the sport discount for subscription sessions
	SubscriptionDiscountPercent float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PricingFor returns the configured pricing of a sport
func (c *Court) PricingFor(sport Sport) (SportPricing, bool) {
	if c == nil || c.Pricing == nil {
		return SportPricing{}, false
	}
	p, ok := c.Pricing[sport]
	return p, ok
}
