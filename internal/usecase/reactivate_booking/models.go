package reactivate_booking

import "github.com/Brian13b/QuicoBasquetProject/internal/domain"

// Request reactivation of a cancelled booking
type Request struct {
	Actor     domain.Actor
	BookingID int64
}
