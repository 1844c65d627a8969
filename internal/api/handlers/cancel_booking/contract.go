package cancel_booking

import (
	"context"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID int64, actor domain.Actor) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
