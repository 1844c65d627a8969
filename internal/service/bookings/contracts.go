package bookings

import (
	"context"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/infra/events"
)

// BookingRepository bookings storage
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	ListByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

// EventPublisher lifecycle events sink
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Logger logging facade
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
