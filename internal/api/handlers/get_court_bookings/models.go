package get_court_bookings

import (
	"errors"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/bookings/models"
)

// ToServiceRequest builds the request from the date query parameter
func ToServiceRequest(actor domain.Actor, courtID int64, dateStr string) (*models.GetCourtBookingsRequest, error) {
	if dateStr == "" {
		return nil, errors.New("date is required")
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &models.GetCourtBookingsRequest{
		Actor:   actor,
		CourtID: courtID,
		Date:    date,
	}, nil
}
