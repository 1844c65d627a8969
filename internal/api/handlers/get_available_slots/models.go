package get_available_slots

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	getAvailableSlots "github.com/Brian13b/QuicoBasquetProject/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date    string          `json:"date"`
	CourtID int64           `json:"courtId"`
	Slots   []AvailableSlot `json:"slots"`
}

// AvailableSlot one start time of the day
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// FromUseCaseResponse converts the use case response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		CourtID: resp.CourtID,
		Slots:   slots,
	}
}

// ToUseCaseRequest builds the request from the date and duration query parameters
func ToUseCaseRequest(courtID int64, dateStr, durationStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		CourtID: courtID,
		Date:    date,
	}

	if durationStr != "" {
		minutes, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, fmt.Errorf("invalid duration: %w", err)
		}
		req.DurationMinutes = minutes
	}

	return req, nil
}
