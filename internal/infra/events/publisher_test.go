package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

type sent struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent   []sent
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sent{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:      42,
		CourtID: 1,
		UserID:  7,
		Sport:   domain.SportBasketball,
		Date:    domain.MustDate("2024-06-03"),
		Range:   domain.MustTimeRange("18:00", "19:00"),
		Status:  domain.BookingStatusConfirmed,
		Price:   26000,
	}
}

func TestPublisher_Publish(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("routes by event type", func(t *testing.T) {
		ch := &fakeChannel{}
		p := &Publisher{ch: ch, exchange: "quico.events"}

		event := ForBooking(BookingCreated, testBooking(), now)
		require.NoError(t, p.Publish(context.Background(), event))

		require.Len(t, ch.sent, 1)
		assert.Equal(t, "quico.events", ch.sent[0].exchange)
		assert.Equal(t, "booking.created", ch.sent[0].key)
		assert.Equal(t, event.ID.String(), ch.sent[0].msg.MessageId)
		assert.Equal(t, uint8(amqp.Persistent), ch.sent[0].msg.DeliveryMode)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(ch.sent[0].msg.Body, &decoded))
		assert.Equal(t, "2024-06-03", decoded["date"])
		assert.Equal(t, "18:00", decoded["start_time"])
		assert.EqualValues(t, 42, decoded["entity_id"])
		assert.NotContains(t, decoded, "weekday")
	})

	t.Run("broker error is wrapped", func(t *testing.T) {
		p := &Publisher{ch: &fakeChannel{err: errors.New("channel closed")}, exchange: "quico.events"}

		err := p.Publish(context.Background(), ForBooking(BookingCancelled, testBooking(), now))
		assert.ErrorIs(t, err, ErrPublish)
	})

	t.Run("close", func(t *testing.T) {
		ch := &fakeChannel{}
		p := &Publisher{ch: ch}
		require.NoError(t, p.Close())
		assert.True(t, ch.closed)
	})
}

func TestForSubscription(t *testing.T) {
	sub := &domain.Subscription{
		ID:           3,
		CourtID:      1,
		UserID:       9,
		Sport:        domain.SportVolleyball,
		Weekday:      domain.Monday,
		Range:        domain.MustTimeRange("23:00", "00:00"),
		Status:       domain.SubscriptionStatusActive,
		MonthlyPrice: 61737.30,
	}

	event := ForSubscription(SubscriptionCreated, sub, time.Now())

	require.NotNil(t, event.Weekday)
	assert.Equal(t, 0, *event.Weekday)
	assert.Equal(t, "00:00", event.EndTime)
	assert.Empty(t, event.Date)
	assert.NotEqual(t, event.ID, ForSubscription(SubscriptionCreated, sub, time.Now()).ID)
}

func TestForExpiredSubscription(t *testing.T) {
	event := ForExpiredSubscription(3, 9, 1, time.Now())

	assert.Equal(t, SubscriptionExpired, event.Type)
	assert.Equal(t, "vencida", event.Status)
	assert.Nil(t, event.Weekday)
	assert.Equal(t, int64(9), event.UserID)
}

func TestNoop(t *testing.T) {
	var n Noop
	assert.NoError(t, n.Publish(context.Background(), Event{}))
	assert.NoError(t, n.Close())
}
