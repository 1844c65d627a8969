package override_booking

import (
	"context"

	bookingModels "github.com/Brian13b/QuicoBasquetProject/internal/service/bookings/models"
	adminOverride "github.com/Brian13b/QuicoBasquetProject/internal/usecase/admin_override"
)

type OverrideUseCase interface {
	OverrideBooking(ctx context.Context, req *adminOverride.BookingRequest) (*bookingModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
