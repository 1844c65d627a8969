package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Monday, WeekdayOf(MustDate("2024-06-03")))
	assert.Equal(t, Wednesday, WeekdayOf(MustDate("2024-06-05")))
	assert.Equal(t, Sunday, WeekdayOf(MustDate("2024-06-09")))
}

func TestWeekday_TimeWeekday(t *testing.T) {
	assert.Equal(t, time.Monday, Monday.TimeWeekday())
	assert.Equal(t, time.Sunday, Sunday.TimeWeekday())
	for w := Monday; w <= Sunday; w++ {
		assert.NoError(t, w.Validate())
	}
	assert.ErrorIs(t, Weekday(7).Validate(), ErrInvalidWeekday)
	assert.ErrorIs(t, Weekday(-1).Validate(), ErrInvalidWeekday)
}

func TestSubscription_Covers(t *testing.T) {
	end := MustDate("2024-06-30")
	sub := &Subscription{
		Weekday:   Monday,
		StartDate: MustDate("2024-06-03"),
		EndDate:   &end,
		Status:    SubscriptionStatusActive,
	}

	assert.True(t, sub.Covers(MustDate("2024-06-03")))
	assert.True(t, sub.Covers(MustDate("2024-06-24")))
	assert.False(t, sub.Covers(MustDate("2024-06-04")), "wrong weekday")
	assert.False(t, sub.Covers(MustDate("2024-07-01")), "after window")
	assert.False(t, sub.Covers(MustDate("2024-05-27")), "before window")

	sub.EndDate = nil
	assert.True(t, sub.Covers(MustDate("2030-01-07")))
}

func TestSubscription_IsExpiredAt(t *testing.T) {
	end := MustDate("2024-06-30")
	sub := &Subscription{StartDate: MustDate("2024-06-01"), EndDate: &end, Status: SubscriptionStatusActive}

	assert.False(t, sub.IsExpiredAt(MustDate("2024-06-30")))
	assert.True(t, sub.IsExpiredAt(MustDate("2024-07-01")))

	sub.Status = SubscriptionStatusCancelled
	assert.False(t, sub.IsExpiredAt(MustDate("2024-07-01")))
}

func TestInitialSubscriptionStatus(t *testing.T) {
	assert.Equal(t, SubscriptionStatusActive, InitialSubscriptionStatus(PaymentCash))
	assert.Equal(t, SubscriptionStatusActive, InitialSubscriptionStatus(PaymentTransfer))
	assert.Equal(t, SubscriptionStatusPending, InitialSubscriptionStatus(PaymentMercadoPago))
}
