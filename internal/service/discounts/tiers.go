package discounts

import "github.com/Brian13b/QuicoBasquetProject/internal/domain"

// Multi-day tiers, by number of distinct weekdays a user plays
const (
	TwoDaysDiscountPercent   = 10
	ThreeDaysDiscountPercent = 15
)

// TierFor discount percentage for a count of distinct weekdays
func TierFor(uniqueWeekdays int) float64 {
	switch {
	case uniqueWeekdays >= 3:
		return ThreeDaysDiscountPercent
	case uniqueWeekdays == 2:
		return TwoDaysDiscountPercent
	default:
		return 0
	}
}

// Recompute tier for the distinct weekdays of active subscriptions, plus candidate when given
func Recompute(active []*domain.Subscription, candidate *domain.Weekday) float64 {
	weekdays := make(map[domain.Weekday]struct{}, len(active)+1)
	for _, s := range active {
		if s.IsActive() {
			weekdays[s.Weekday] = struct{}{}
		}
	}
	if candidate != nil {
		weekdays[*candidate] = struct{}{}
	}
	return TierFor(len(weekdays))
}
