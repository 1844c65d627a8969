package reactivate_booking

import (
	"context"

	bookingModels "github.com/Brian13b/QuicoBasquetProject/internal/service/bookings/models"
	reactivateBooking "github.com/Brian13b/QuicoBasquetProject/internal/usecase/reactivate_booking"
)

type ReactivateBookingUseCase interface {
	Execute(ctx context.Context, req *reactivateBooking.Request) (*bookingModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
