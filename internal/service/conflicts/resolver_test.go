package conflicts

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/pkg/logger"
	"github.com/Brian13b/QuicoBasquetProject/pkg/ptr"
)

const courtID = int64(1)

type memoryStore struct {
	bookings      []*domain.Booking
	subscriptions []*domain.Subscription

	datesCalls int
	err        error
}

func (m *memoryStore) ListBookings(_ context.Context, court int64, date time.Time) ([]*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Booking
	for _, b := range m.bookings {
		if b.CourtID == court && b.IsActive() && b.Date.Equal(domain.DateOnly(date)) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memoryStore) ListBookingsOnDates(ctx context.Context, court int64, dates []time.Time) ([]*domain.Booking, error) {
	m.datesCalls++
	var out []*domain.Booking
	for _, d := range dates {
		found, err := m.ListBookings(ctx, court, d)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

func (m *memoryStore) ListActiveSubscriptions(_ context.Context, court int64, weekday domain.Weekday) ([]*domain.Subscription, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Subscription
	for _, s := range m.subscriptions {
		if s.CourtID == court && s.Weekday == weekday && s.IsActive() {
			out = append(out, s)
		}
	}
	return out, nil
}

type countingMetrics struct {
	kinds []string
}

func (c *countingMetrics) RecordConflict(kind string) {
	c.kinds = append(c.kinds, kind)
}

func booking(id int64, date, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:      id,
		CourtID: courtID,
		Date:    domain.MustDate(date),
		Range:   domain.MustTimeRange(start, end),
		Status:  domain.BookingStatusConfirmed,
	}
}

func subscription(id int64, weekday domain.Weekday, start, end, from string, to *string) *domain.Subscription {
	s := &domain.Subscription{
		ID:        id,
		CourtID:   courtID,
		Weekday:   weekday,
		Range:     domain.MustTimeRange(start, end),
		StartDate: domain.MustDate(from),
		Status:    domain.SubscriptionStatusActive,
	}
	if to != nil {
		s.EndDate = ptr.Ptr(domain.MustDate(*to))
	}
	return s
}

func newResolver(store AvailabilityStore, opts ...Option) *Resolver {
	return NewResolver(store, logger.Nop(), opts...)
}

func TestCheckSubscription_CollidesWithBooking(t *testing.T) {
	store := &memoryStore{bookings: []*domain.Booking{booking(10, "2024-06-03", "18:00", "19:00")}}
	metrics := &countingMetrics{}
	r := newResolver(store, WithMetrics(metrics))

	end := domain.MustDate("2024-06-30")
	err := r.CheckSubscription(context.Background(), courtID, domain.Monday,
		domain.MustTimeRange("18:30", "19:30"), domain.MustDate("2024-06-01"), &end, nil)

	require.ErrorIs(t, err, ErrConflict)
	c, ok := AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, KindBooking, c.Kind)
	assert.Equal(t, int64(10), c.EntityID)
	assert.Equal(t, domain.MustDate("2024-06-03"), c.Date)
	assert.Equal(t, []string{"booking"}, metrics.kinds)
	assert.Equal(t, 1, store.datesCalls)

	// once the booking is cancelled the same subscription fits
	store.bookings[0].Status = domain.BookingStatusCancelled
	err = r.CheckSubscription(context.Background(), courtID, domain.Monday,
		domain.MustTimeRange("18:30", "19:30"), domain.MustDate("2024-06-01"), &end, nil)
	assert.NoError(t, err)
}

func TestCheckSubscription_FirstCollidingDate(t *testing.T) {
	store := &memoryStore{bookings: []*domain.Booking{
		booking(11, "2024-06-24", "20:00", "21:00"),
		booking(12, "2024-06-10", "20:30", "21:30"),
	}}
	r := newResolver(store)

	end := domain.MustDate("2024-06-30")
	err := r.CheckSubscription(context.Background(), courtID, domain.Monday,
		domain.MustTimeRange("20:00", "21:00"), domain.MustDate("2024-06-01"), &end, nil)

	c, ok := AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, int64(12), c.EntityID)
	assert.Equal(t, domain.MustDate("2024-06-10"), c.Date)
}

func TestCheckSubscription_AgainstSubscriptions(t *testing.T) {
	tests := []struct {
		name     string
		existing *domain.Subscription
		from     string
		to       *string
		wantDate string
	}{
		{
			name:     "windows intersect",
			existing: subscription(5, domain.Thursday, "19:00", "20:30", "2024-06-13", ptr.Ptr("2024-08-31")),
			from:     "2024-06-01",
			to:       ptr.Ptr("2024-06-30"),
			wantDate: "2024-06-13",
		},
		{
			name:     "existing open-ended",
			existing: subscription(6, domain.Thursday, "19:00", "20:30", "2024-01-04", nil),
			from:     "2024-06-01",
			to:       ptr.Ptr("2024-06-30"),
			wantDate: "2024-06-06",
		},
		{
			name:     "both open-ended",
			existing: subscription(7, domain.Thursday, "19:30", "21:00", "2025-01-02", nil),
			from:     "2024-06-01",
			to:       nil,
			wantDate: "2025-01-02",
		},
		{
			name:     "both open-ended, existing starts past the horizon",
			existing: subscription(11, domain.Thursday, "20:00", "21:00", "2025-09-04", nil),
			from:     "2024-06-01",
			to:       nil,
			wantDate: "2025-09-04",
		},
		{
			name:     "candidate open-ended, existing bounded past the horizon",
			existing: subscription(12, domain.Thursday, "19:00", "20:30", "2025-08-07", ptr.Ptr("2025-09-30")),
			from:     "2024-06-01",
			to:       nil,
			wantDate: "2025-08-07",
		},
		{
			name:     "disjoint windows",
			existing: subscription(8, domain.Thursday, "19:00", "20:30", "2024-07-01", ptr.Ptr("2024-07-31")),
			from:     "2024-06-01",
			to:       ptr.Ptr("2024-06-30"),
		},
		{
			name:     "window overlap without a shared thursday",
			existing: subscription(9, domain.Thursday, "19:00", "20:30", "2024-06-28", ptr.Ptr("2024-07-31")),
			from:     "2024-06-01",
			to:       ptr.Ptr("2024-06-30"),
		},
		{
			name:     "different time",
			existing: subscription(10, domain.Thursday, "21:00", "22:00", "2024-06-01", nil),
			from:     "2024-06-01",
			to:       ptr.Ptr("2024-06-30"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResolver(&memoryStore{subscriptions: []*domain.Subscription{tt.existing}})

			var to *time.Time
			if tt.to != nil {
				to = ptr.Ptr(domain.MustDate(*tt.to))
			}
			err := r.CheckSubscription(context.Background(), courtID, domain.Thursday,
				domain.MustTimeRange("20:00", "21:00"), domain.MustDate(tt.from), to, nil)

			if tt.wantDate == "" {
				assert.NoError(t, err)
				return
			}
			c, ok := AsConflict(err)
			require.True(t, ok, "expected conflict, got %v", err)
			assert.Equal(t, KindSubscription, c.Kind)
			assert.Equal(t, tt.existing.ID, c.EntityID)
			assert.Equal(t, domain.MustDate(tt.wantDate), c.Date)
		})
	}
}

func TestCheckSubscription_OpenEndedBeyondHorizon(t *testing.T) {
	later := subscription(20, domain.Monday, "18:00", "19:00", "2025-09-01", nil)
	earlier := subscription(21, domain.Monday, "18:30", "19:30", "2025-10-06", nil)
	store := &memoryStore{
		subscriptions: []*domain.Subscription{earlier, later},
		bookings:      []*domain.Booking{booking(30, "2025-08-04", "18:00", "19:00")},
	}
	metrics := &countingMetrics{}
	r := newResolver(store, WithMetrics(metrics))

	err := r.CheckSubscription(context.Background(), courtID, domain.Monday,
		domain.MustTimeRange("18:00", "19:00"), domain.MustDate("2024-06-01"), nil, nil)

	c, ok := AsConflict(err)
	require.True(t, ok, "expected conflict, got %v", err)
	assert.Equal(t, KindSubscription, c.Kind)
	assert.Equal(t, int64(20), c.EntityID)
	assert.Equal(t, domain.MustDate("2025-09-01"), c.Date)
	assert.Equal(t, []string{"subscription"}, metrics.kinds)

	// bookings are only checked up to the horizon
	store.subscriptions = nil
	err = r.CheckSubscription(context.Background(), courtID, domain.Monday,
		domain.MustTimeRange("18:00", "19:00"), domain.MustDate("2024-06-01"), nil, nil)
	assert.NoError(t, err)
}

func TestCheckSubscription_ExcludesSelf(t *testing.T) {
	self := subscription(3, domain.Friday, "18:00", "19:00", "2024-06-01", ptr.Ptr("2024-06-30"))
	r := newResolver(&memoryStore{subscriptions: []*domain.Subscription{self}})

	end := domain.MustDate("2024-06-30")
	err := r.CheckSubscription(context.Background(), courtID, domain.Friday,
		self.Range, self.StartDate, &end, ptr.Ptr(int64(3)))
	assert.NoError(t, err)

	err = r.CheckSubscription(context.Background(), courtID, domain.Friday,
		self.Range, self.StartDate, &end, nil)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCheckSubscription_EmptyExpansion(t *testing.T) {
	store := &memoryStore{err: errors.New("must not be queried")}
	r := newResolver(store)

	end := domain.MustDate("2024-06-04")
	err := r.CheckSubscription(context.Background(), courtID, domain.Sunday,
		domain.MustTimeRange("10:00", "11:00"), domain.MustDate("2024-06-03"), &end, nil)

	assert.NoError(t, err)
	assert.Zero(t, store.datesCalls)
}

func TestCheckBooking(t *testing.T) {
	store := &memoryStore{
		bookings: []*domain.Booking{booking(1, "2024-06-03", "18:00", "19:00")},
		subscriptions: []*domain.Subscription{
			subscription(2, domain.Monday, "20:00", "21:30", "2024-06-01", ptr.Ptr("2024-06-30")),
		},
	}
	r := newResolver(store)
	ctx := context.Background()
	monday := domain.MustDate("2024-06-03")

	err := r.CheckBooking(ctx, courtID, monday, domain.MustTimeRange("18:30", "19:30"), nil)
	c, ok := AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, KindBooking, c.Kind)

	err = r.CheckBooking(ctx, courtID, monday, domain.MustTimeRange("21:00", "22:00"), nil)
	c, ok = AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, KindSubscription, c.Kind)
	assert.Equal(t, int64(2), c.EntityID)

	assert.NoError(t, r.CheckBooking(ctx, courtID, monday, domain.MustTimeRange("19:00", "20:00"), nil))

	// the subscription window ends in June
	assert.NoError(t, r.CheckBooking(ctx, courtID, domain.MustDate("2024-07-01"), domain.MustTimeRange("21:00", "22:00"), nil))

	// reactivating booking 1 must not collide with itself
	assert.NoError(t, r.CheckBooking(ctx, courtID, monday, domain.MustTimeRange("18:00", "19:00"), ptr.Ptr(int64(1))))
}

func TestCheckBooking_MidnightRanges(t *testing.T) {
	store := &memoryStore{bookings: []*domain.Booking{booking(1, "2024-06-03", "23:00", "00:00")}}
	r := newResolver(store)
	monday := domain.MustDate("2024-06-03")

	err := r.CheckBooking(context.Background(), courtID, monday, domain.MustTimeRange("22:30", "23:30"), nil)
	assert.ErrorIs(t, err, ErrConflict)

	err = r.CheckBooking(context.Background(), courtID, monday, domain.MustTimeRange("22:00", "23:00"), nil)
	assert.NoError(t, err)

	// a midnight range is bound to its start date only
	err = r.CheckBooking(context.Background(), courtID, domain.MustDate("2024-06-04"), domain.MustTimeRange("08:00", "09:00"), nil)
	assert.NoError(t, err)
}

func TestCheck_StorageErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	r := newResolver(&memoryStore{err: storeErr})

	err := r.CheckBooking(context.Background(), courtID, domain.MustDate("2024-06-03"), domain.MustTimeRange("10:00", "11:00"), nil)
	assert.Same(t, storeErr, err)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestOccupied(t *testing.T) {
	store := &memoryStore{
		bookings: []*domain.Booking{booking(1, "2024-06-03", "18:00", "19:00")},
		subscriptions: []*domain.Subscription{
			subscription(2, domain.Monday, "20:00", "21:00", "2024-06-01", nil),
			subscription(3, domain.Monday, "09:00", "10:00", "2024-07-01", nil),
		},
	}

	got, err := newResolver(store).Occupied(context.Background(), courtID, domain.MustDate("2024-06-03"))
	require.NoError(t, err)
	assert.Equal(t, []Commitment{
		{Kind: KindBooking, ID: 1, Range: domain.MustTimeRange("18:00", "19:00")},
		{Kind: KindSubscription, ID: 2, Range: domain.MustTimeRange("20:00", "21:00")},
	}, got)
}

// The window intersection shortcut must agree with checking every expanded date.
func TestFirstSharedOccurrence_AgreesWithPerDateExpansion(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	base := domain.MustDate("2024-01-01")

	for i := 0; i < 500; i++ {
		weekday := domain.Weekday(rnd.Intn(7))
		start := base.AddDate(0, 0, rnd.Intn(120))
		end := start.AddDate(0, 0, rnd.Intn(40))

		existing := &domain.Subscription{
			Weekday:   weekday,
			StartDate: base.AddDate(0, 0, rnd.Intn(160)),
			Status:    domain.SubscriptionStatusActive,
		}
		if rnd.Intn(4) > 0 {
			existing.EndDate = ptr.Ptr(existing.StartDate.AddDate(0, 0, rnd.Intn(40)))
		}

		var want time.Time
		found := false
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if domain.WeekdayOf(d) == weekday && existing.Covers(d) {
				want, found = d, true
				break
			}
		}

		got, ok := FirstSharedOccurrence(weekday, start, end, existing)
		require.Equal(t, found, ok, "case %d", i)
		if found {
			assert.Equal(t, want, got, "case %d", i)
		}
	}
}
