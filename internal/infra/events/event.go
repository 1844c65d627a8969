package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

// Type routing key of an event on the topic exchange
type Type string

const (
	BookingCreated     Type = "booking.created"
	BookingCancelled   Type = "booking.cancelled"
	BookingReactivated Type = "booking.reactivated"

	SubscriptionCreated     Type = "subscription.created"
	SubscriptionCancelled   Type = "subscription.cancelled"
	SubscriptionReactivated Type = "subscription.reactivated"
	SubscriptionRenewed     Type = "subscription.renewed"
	SubscriptionExpired     Type = "subscription.expired"
)

// Event lifecycle notification consumed by the mailing and messaging workers
type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	EntityID   int64     `json:"entity_id"`
	UserID     int64     `json:"user_id"`
	CourtID    int64     `json:"court_id"`

	Sport     domain.Sport `json:"sport,omitempty"`
	Date      string       `json:"date,omitempty"`    // bookings
	Weekday   *int         `json:"weekday,omitempty"` // subscriptions
	StartTime string       `json:"start_time,omitempty"`
	EndTime   string       `json:"end_time,omitempty"`
	Status    string       `json:"status,omitempty"`
	Amount    float64      `json:"amount,omitempty"`
}

// ForBooking builds an event describing a booking
func ForBooking(t Type, b *domain.Booking, now time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		OccurredAt: now.UTC(),
		EntityID:   b.ID,
		UserID:     b.UserID,
		CourtID:    b.CourtID,
		Sport:      b.Sport,
		Date:       b.Date.Format(domain.DateFormat),
		StartTime:  b.Range.Start.String(),
		EndTime:    b.Range.End.String(),
		Status:     string(b.Status),
		Amount:     b.Price,
	}
}

// ForSubscription builds an event describing a subscription
func ForSubscription(t Type, s *domain.Subscription, now time.Time) Event {
	weekday := int(s.Weekday)
	return Event{
		ID:         uuid.New(),
		Type:       t,
		OccurredAt: now.UTC(),
		EntityID:   s.ID,
		UserID:     s.UserID,
		CourtID:    s.CourtID,
		Sport:      s.Sport,
		Weekday:    &weekday,
		StartTime:  s.Range.Start.String(),
		EndTime:    s.Range.End.String(),
		Status:     string(s.Status),
		Amount:     s.MonthlyPrice,
	}
}

// ForExpiredSubscription builds the event for a subscription flipped to vencida by the sweep,
// which only knows the ids it touched
func ForExpiredSubscription(id, userID, courtID int64, now time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Type:       SubscriptionExpired,
		OccurredAt: now.UTC(),
		EntityID:   id,
		UserID:     userID,
		CourtID:    courtID,
		Status:     string(domain.SubscriptionStatusExpired),
	}
}
