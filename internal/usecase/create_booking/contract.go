package create_booking

import (
	"context"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
	"github.com/Brian13b/QuicoBasquetProject/internal/integrations/userservice"
)

// BookingRepository bookings storage
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CourtRepository courts storage with the per-court lock
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	LockForUpdate(ctx context.Context, courtID int64) error
}

// ConflictChecker booking collision check
type ConflictChecker interface {
	CheckBooking(ctx context.Context, courtID int64, date time.Time, rng domain.TimeRange, excludeBookingID *int64) error
}

// PricingEngine session prices
type PricingEngine interface {
	SessionPrice(court *domain.Court, sport domain.Sport, durationMinutes int, isSubscription bool) (float64, error)
}

// UserServiceClient user service client
type UserServiceClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*userservice.User, error)
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
