package get_available_slots

import (
	"time"

	"github.com/Brian13b/QuicoBasquetProject/pkg/types"
)

// Request free start times of a court on one date
type Request struct {
	CourtID         int64
	Date            time.Time
	DurationMinutes int // 0 = one hour
}

// Response slots of the day in start order
type Response struct {
	Date    time.Time
	CourtID int64
	Slots   []Slot
}

// Slot one hourly start time
type Slot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Available       bool
}
