package domain

// Operating hours, minute-of-day
const (
	OpeningMinute     = 8 * 60  // 08:00
	LatestStartMinute = 23 * 60 // 23:00, the last slot ends at midnight
	MidnightMinute    = 0
	EndOfDayMinute    = 24 * 60
)

// Booking duration limits
const (
	MinBookingMinutes = 60
	MaxBookingMinutes = 120
)

// Pricing defaults
const (
	DefaultSessionsPerMonth            = 4.33
	DefaultBasketballHourlyPrice       = 26000
	DefaultVolleyballHourlyPrice       = 15000
	DefaultSubscriptionDiscountPercent = 5
	MaxDiscountPercent                 = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveBookingStatuses bookings that no longer occupy the court
var InactiveBookingStatuses = []BookingStatus{
	BookingStatusCancelled,
}

// ActiveBookingStatuses bookings that take part in conflict checks
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
}
