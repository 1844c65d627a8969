package get_quote

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/courts/models"
)

// ToServiceRequest parses sport, minutes, subscription, weekday and userId query parameters
func ToServiceRequest(courtID int64, q url.Values) (*models.QuoteRequest, error) {
	req := &models.QuoteRequest{
		CourtID:         courtID,
		Sport:           q.Get("sport"),
		DurationMinutes: domain.MinBookingMinutes,
	}

	if raw := q.Get("minutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid minutes: %w", err)
		}
		req.DurationMinutes = minutes
	}

	if raw := q.Get("subscription"); raw != "" {
		sub, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid subscription flag: %w", err)
		}
		req.Subscription = sub
	}

	if raw := q.Get("weekday"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid weekday: %w", err)
		}
		wd := domain.Weekday(n)
		if err := wd.Validate(); err != nil {
			return nil, err
		}
		req.Weekday = &wd
	}

	if raw := q.Get("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid userId: %w", err)
		}
		req.UserID = &userID
	}

	return req, nil
}
