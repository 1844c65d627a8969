package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
	"github.com/Brian13b/QuicoBasquetProject/pkg/logger"
)

type bookingsStub struct {
	byDate []*domain.Booking
	dates  []time.Time
}

func (s *bookingsStub) ListByCourtAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return s.byDate, nil
}

func (s *bookingsStub) ListByCourtAndDates(_ context.Context, _ int64, dates []time.Time) ([]*domain.Booking, error) {
	s.dates = dates
	return s.byDate, nil
}

type subscriptionsStub struct {
	weekday domain.Weekday
	subs    []*domain.Subscription
}

func (s *subscriptionsStub) ListActiveByCourtAndWeekday(_ context.Context, _ int64, weekday domain.Weekday) ([]*domain.Subscription, error) {
	s.weekday = weekday
	return s.subs, nil
}

func TestStoreFeedsResolver(t *testing.T) {
	monday := domain.MustDate("2024-06-03")
	bookings := &bookingsStub{byDate: []*domain.Booking{{
		ID:     5,
		Date:   monday,
		Range:  domain.MustTimeRange("18:00", "19:00"),
		Status: domain.BookingStatusConfirmed,
	}}}
	subs := &subscriptionsStub{}

	var _ conflicts.AvailabilityStore = NewStore(bookings, subs)
	resolver := conflicts.NewResolver(NewStore(bookings, subs), logger.Nop())

	err := resolver.CheckBooking(context.Background(), 1, monday, domain.MustTimeRange("18:30", "19:30"), nil)
	conflict, ok := conflicts.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, int64(5), conflict.EntityID)
	assert.Equal(t, domain.Monday, subs.weekday)

	end := domain.MustDate("2024-06-17")
	err = resolver.CheckSubscription(context.Background(), 1, domain.Monday, domain.MustTimeRange("20:00", "21:00"), monday, &end, nil)
	require.NoError(t, err)
	assert.Len(t, bookings.dates, 3)
}
