package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

var (
	hundred       = decimal.NewFromInt(100)
	minutesInHour = decimal.NewFromInt(60)
)

// Engine computes session and monthly prices
// Amounts are rounded half-up to 2 decimal places
type Engine struct {
	sessionsPerMonth decimal.Decimal
}

// NewEngine creates an engine; sessionsPerMonth <= 0 falls back to domain.DefaultSessionsPerMonth
func NewEngine(sessionsPerMonth float64) *Engine {
	if sessionsPerMonth <= 0 {
		sessionsPerMonth = domain.DefaultSessionsPerMonth
	}
	return &Engine{sessionsPerMonth: decimal.NewFromFloat(sessionsPerMonth)}
}

// SessionPrice base × (1 − sport discount) × (1 − subscription discount, subscriptions only) × hours
func (e *Engine) SessionPrice(court *domain.Court, sport domain.Sport, durationMinutes int, isSubscription bool) (float64, error) {
	price, err := e.sessionPrice(court, sport, durationMinutes, isSubscription)
	if err != nil {
		return 0, err
	}
	return price.InexactFloat64(), nil
}

// MonthlyPrice subscription session price × (1 − tier discount) × sessions per month
// With a zero tier this is exactly sessionPrice(isSubscription) × sessions per month
func (e *Engine) MonthlyPrice(court *domain.Court, sport domain.Sport, durationMinutes int, discountPercent float64) (float64, error) {
	session, err := e.sessionPrice(court, sport, durationMinutes, true)
	if err != nil {
		return 0, err
	}

	monthly := session.
		Mul(discountFactor(discountPercent)).
		Mul(e.sessionsPerMonth).
		Round(2)
	if !monthly.IsPositive() {
		return 0, fmt.Errorf("%w: monthly %s %s for %d minutes", ErrNonPositivePrice, monthly, sport, durationMinutes)
	}
	return monthly.InexactFloat64(), nil
}

// ApplyDiscount price × (1 − percent/100), rounded
func ApplyDiscount(price, percent float64) float64 {
	return decimal.NewFromFloat(price).Mul(discountFactor(percent)).Round(2).InexactFloat64()
}

func (e *Engine) sessionPrice(court *domain.Court, sport domain.Sport, durationMinutes int, isSubscription bool) (decimal.Decimal, error) {
	p, ok := court.PricingFor(sport)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownSport, sport)
	}

	price := decimal.NewFromFloat(p.HourlyPrice).Mul(discountFactor(p.DiscountPercent))
	if isSubscription {
		price = price.Mul(discountFactor(court.SubscriptionDiscountPercent))
	}
	price = price.
		Mul(decimal.NewFromInt(int64(durationMinutes))).
		Div(minutesInHour).
		Round(2)

	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s %s for %d minutes", ErrNonPositivePrice, price, sport, durationMinutes)
	}
	return price, nil
}

func discountFactor(percent float64) decimal.Decimal {
	return decimal.NewFromInt(1).Sub(decimal.NewFromFloat(percent).Div(hundred))
}
