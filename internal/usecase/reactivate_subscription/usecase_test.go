package reactivate_subscription

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	subscriptionRepo "github.com/Brian13b/QuicoBasquetProject/internal/infra/storage/subscription"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/discounts"
	"github.com/Brian13b/QuicoBasquetProject/pkg/clock"
	"github.com/Brian13b/QuicoBasquetProject/pkg/logger"
	"github.com/Brian13b/QuicoBasquetProject/pkg/ptr"
)

// memCourt in-memory court: subscriptions repository and availability store at once
type memCourt struct {
	bookings []*domain.Booking
	subs     map[int64]*domain.Subscription
	locked   []int64
}

func (m *memCourt) GetByID(_ context.Context, id int64) (*domain.Subscription, error) {
	s, ok := m.subs[id]
	if !ok {
		return nil, subscriptionRepo.ErrSubscriptionNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memCourt) UpdateStatus(_ context.Context, id int64, status domain.SubscriptionStatus) error {
	m.subs[id].Status = status
	return nil
}

func (m *memCourt) LockForUpdate(_ context.Context, courtID int64) error {
	m.locked = append(m.locked, courtID)
	return nil
}

func (m *memCourt) ListBookings(_ context.Context, courtID int64, date time.Time) ([]*domain.Booking, error) {
	return m.ListBookingsOnDates(context.Background(), courtID, []time.Time{date})
}

func (m *memCourt) ListBookingsOnDates(_ context.Context, courtID int64, dates []time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range m.bookings {
		if b.CourtID == courtID && b.IsActive() && slices.ContainsFunc(dates, b.Date.Equal) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memCourt) ListActiveSubscriptions(_ context.Context, courtID int64, weekday domain.Weekday) ([]*domain.Subscription, error) {
	var out []*domain.Subscription
	for _, s := range m.subs {
		if s.CourtID == courtID && s.Weekday == weekday && s.IsActive() {
			out = append(out, s)
		}
	}
	return out, nil
}

type discountStub struct{ calls int }

func (d *discountStub) Rebalance(_ context.Context, userID int64) (*discounts.Rebalance, error) {
	d.calls++
	return &discounts.Rebalance{
		UserID:          userID,
		DiscountPercent: 10,
		MonthlyPrices:   map[int64]float64{3: 96255.90, 4: 96255.90},
		Updated:         []int64{3, 4},
	}, nil
}

type publisherStub struct{ events []events.Event }

func (p *publisherStub) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return nil
}

type txStub struct{}

func (txStub) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func cancelledSubscription() *domain.Subscription {
	return &domain.Subscription{
		ID:              3,
		CourtID:         1,
		UserID:          7,
		Sport:           domain.SportBasketball,
		Weekday:         domain.Monday,
		Range:           domain.MustTimeRange("18:00", "19:00"),
		StartDate:       domain.MustDate("2024-06-03"),
		EndDate:         ptr.Ptr(domain.MustDate("2024-06-30")),
		Status:          domain.SubscriptionStatusCancelled,
		DiscountPercent: 0,
		MonthlyPrice:    106951,
	}
}

type fixture struct {
	uc        *UseCase
	court     *memCourt
	discounts *discountStub
	publisher *publisherStub
}

func newFixture(sub *domain.Subscription, bookings ...*domain.Booking) *fixture {
	f := &fixture{
		court:     &memCourt{bookings: bookings, subs: map[int64]*domain.Subscription{sub.ID: sub}},
		discounts: &discountStub{},
		publisher: &publisherStub{},
	}
	log := logger.Nop()
	resolver := conflicts.NewResolver(f.court, log)
	f.uc = NewUseCase(f.court, f.court, resolver, f.discounts, f.publisher, txStub{}, log)
	f.uc.timeProvider = clock.Fixed(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	return f
}

func owner() *Request {
	return &Request{Actor: domain.Actor{UserID: 7}, SubscriptionID: 3}
}

func TestExecute_Reactivates(t *testing.T) {
	f := newFixture(cancelledSubscription())

	resp, err := f.uc.Execute(context.Background(), owner())
	require.NoError(t, err)

	assert.Equal(t, "activa", resp.Status)
	assert.Equal(t, 10.0, resp.DiscountPercent)
	assert.InDelta(t, 96255.90, resp.MonthlyPrice, 0.001)
	assert.Equal(t, []int64{4}, resp.Rebalanced)
	assert.Equal(t, []int64{1}, f.court.locked)
	assert.Equal(t, 1, f.discounts.calls)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.SubscriptionReactivated, f.publisher.events[0].Type)
}

func TestExecute_InterveningBookingBlocksReactivation(t *testing.T) {
	intruder := &domain.Booking{
		ID:      9,
		CourtID: 1,
		UserID:  8,
		Date:    domain.MustDate("2024-06-17"),
		Range:   domain.MustTimeRange("18:30", "19:30"),
		Status:  domain.BookingStatusConfirmed,
	}
	f := newFixture(cancelledSubscription(), intruder)

	_, err := f.uc.Execute(context.Background(), owner())
	require.ErrorIs(t, err, ErrReactivationConflict)

	conflict, ok := conflicts.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, conflicts.KindBooking, conflict.Kind)
	assert.Equal(t, int64(9), conflict.EntityID)
	assert.Equal(t, domain.MustDate("2024-06-17"), conflict.Date)

	assert.Equal(t, domain.SubscriptionStatusCancelled, f.court.subs[3].Status)
	assert.Equal(t, domain.BookingStatusConfirmed, intruder.Status)
	assert.Zero(t, f.discounts.calls)
	assert.Empty(t, f.publisher.events)
}

func TestExecute_PastOccurrencesAreNotChecked(t *testing.T) {
	sub := cancelledSubscription()
	sub.StartDate = domain.MustDate("2024-05-06")

	played := &domain.Booking{
		ID:      9,
		CourtID: 1,
		Date:    domain.MustDate("2024-05-13"),
		Range:   domain.MustTimeRange("18:00", "19:00"),
		Status:  domain.BookingStatusCompleted,
	}
	f := newFixture(sub, played)

	_, err := f.uc.Execute(context.Background(), owner())
	require.NoError(t, err)
}

func TestExecute_Rejections(t *testing.T) {
	active := cancelledSubscription()
	active.Status = domain.SubscriptionStatusActive

	ended := cancelledSubscription()
	ended.EndDate = ptr.Ptr(domain.MustDate("2024-05-27"))

	tests := []struct {
		name string
		sub  *domain.Subscription
		req  *Request
		want error
	}{
		{"missing", cancelledSubscription(), &Request{Actor: domain.Actor{UserID: 7}, SubscriptionID: 4}, ErrSubscriptionNotFound},
		{"stranger", cancelledSubscription(), &Request{Actor: domain.Actor{UserID: 8}, SubscriptionID: 3}, ErrAccessDenied},
		{"not cancelled", active, owner(), ErrInvalidTransition},
		{"window ended", ended, owner(), ErrWindowEnded},
		{"bad id", cancelledSubscription(), &Request{Actor: domain.Actor{UserID: 7}}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.sub)
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, f.discounts.calls)
		})
	}
}
