package availability

import (
	"context"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

// BookingReader booking side of a court's commitments
type BookingReader interface {
	ListByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error)
	ListByCourtAndDates(ctx context.Context, courtID int64, dates []time.Time) ([]*domain.Booking, error)
}

// SubscriptionReader subscription side of a court's commitments
type SubscriptionReader interface {
	ListActiveByCourtAndWeekday(ctx context.Context, courtID int64, weekday domain.Weekday) ([]*domain.Subscription, error)
}

// Store joins the booking and subscription repositories into the view the conflict resolver reads
type Store struct {
	bookings      BookingReader
	subscriptions SubscriptionReader
}

// NewStore creates an availability store
func NewStore(bookings BookingReader, subscriptions SubscriptionReader) *Store {
	return &Store{bookings: bookings, subscriptions: subscriptions}
}

func (s *Store) ListBookings(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error) {
	return s.bookings.ListByCourtAndDate(ctx, courtID, date)
}

func (s *Store) ListBookingsOnDates(ctx context.Context, courtID int64, dates []time.Time) ([]*domain.Booking, error) {
	return s.bookings.ListByCourtAndDates(ctx, courtID, dates)
}

func (s *Store) ListActiveSubscriptions(ctx context.Context, courtID int64, weekday domain.Weekday) ([]*domain.Subscription, error) {
	return s.subscriptions.ListActiveByCourtAndWeekday(ctx, courtID, weekday)
}
