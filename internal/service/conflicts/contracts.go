package conflicts

import (
	"context"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

// AvailabilityStore read access to a court's commitments
// Inside a transaction implementations lock the returned rows
type AvailabilityStore interface {
	// ListBookings non-cancelled bookings of a court on one date
	ListBookings(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error)
	// ListBookingsOnDates non-cancelled bookings of a court on any of dates, in one query
	ListBookingsOnDates(ctx context.Context, courtID int64, dates []time.Time) ([]*domain.Booking, error)
	// ListActiveSubscriptions subscriptions with status activa on a court and weekday
	ListActiveSubscriptions(ctx context.Context, courtID int64, weekday domain.Weekday) ([]*domain.Subscription, error)
}

// MetricsRecorder counts rejected checks
type MetricsRecorder interface {
	RecordConflict(kind string)
}

// Logger logging facade
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
