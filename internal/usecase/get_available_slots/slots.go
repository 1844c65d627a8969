package get_available_slots

import (
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
	"github.com/Brian13b/QuicoBasquetProject/pkg/types"
)

// slotStepMinutes slots start on the hour
const slotStepMinutes = 60

// generateTimeSlots start times from opening on the hour, keeping only slots that end by midnight.
// For today, start times already passed are dropped.
func generateTimeSlots(durationMinutes int, date, now time.Time) []domain.AvailableSlot {
	day := domain.DateOnly(date)
	today := domain.DateOnly(now)
	if day.Before(today) {
		return []domain.AvailableSlot{}
	}

	earliest := domain.OpeningMinute
	if day.Equal(today) {
		earliest = types.NewTimeString(now).Minutes() + 1
	}

	slots := make([]domain.AvailableSlot, 0)
	for start := domain.OpeningMinute; start <= domain.LatestStartMinute; start += slotStepMinutes {
		if start+durationMinutes > domain.EndOfDayMinute {
			break
		}
		if start < earliest {
			continue
		}

		ts, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			break
		}
		slots = append(slots, domain.AvailableSlot{StartTime: ts, DurationMinutes: durationMinutes, Available: true})
	}

	return slots
}

// markOccupied flags every slot overlapping a commitment, with the same overlap rule
// the conflict checks use
func markOccupied(slots []domain.AvailableSlot, occupied []conflicts.Commitment) ([]Slot, error) {
	result := make([]Slot, len(slots))

	for i := range slots {
		rng, err := slots[i].Range()
		if err != nil {
			return nil, err
		}
		available := slots[i].Available
		for _, c := range occupied {
			if c.Range.Overlaps(rng) {
				available = false
				break
			}
		}

		result[i] = Slot{
			StartTime:       rng.Start,
			EndTime:         rng.End,
			DurationMinutes: slots[i].DurationMinutes,
			Available:       available,
		}
	}

	return result, nil
}
