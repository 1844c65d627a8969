package reactivate_booking

import (
	"context"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
)

// BookingRepository bookings storage
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.BookingPaymentStatus) error
}

// CourtLocker per-court lock
type CourtLocker interface {
	LockForUpdate(ctx context.Context, courtID int64) error
}

// ConflictChecker booking collision check
type ConflictChecker interface {
	CheckBooking(ctx context.Context, courtID int64, date time.Time, rng domain.TimeRange, excludeBookingID *int64) error
}

// EventPublisher lifecycle events sink
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TransactionManager transactions
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider current time source
type TimeProvider interface {
	Now() time.Time
}

// Logger logging facade
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
