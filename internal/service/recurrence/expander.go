package recurrence

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

// Expand yields, in ascending order, the dates in [windowStart, windowEnd] falling on weekday
// The sequence is finite and can be ranged over any number of times
func Expand(weekday domain.Weekday, windowStart time.Time, windowEnd *time.Time) (iter.Seq[time.Time], error) {
	if err := weekday.Validate(); err != nil {
		return nil, err
	}
	if windowEnd == nil {
		return nil, fmt.Errorf("%w: weekday=%s start=%s", ErrUnboundedWindow, weekday, windowStart.Format(domain.DateFormat))
	}

	first, ok := FirstOn(weekday, windowStart, *windowEnd)
	last := domain.DateOnly(*windowEnd)

	return func(yield func(time.Time) bool) {
		if !ok {
			return
		}
		for d := first; !d.After(last); d = d.AddDate(0, 0, 7) {
			if !yield(d) {
				return
			}
		}
	}, nil
}

// Dates collects Expand into a slice
func Dates(weekday domain.Weekday, windowStart time.Time, windowEnd *time.Time) ([]time.Time, error) {
	seq, err := Expand(weekday, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// FirstOn returns the earliest date in [from, to] falling on weekday
func FirstOn(weekday domain.Weekday, from, to time.Time) (time.Time, bool) {
	start := domain.DateOnly(from)
	end := domain.DateOnly(to)

	offset := (int(weekday) - int(domain.WeekdayOf(start)) + 7) % 7
	first := start.AddDate(0, 0, offset)
	if first.After(end) {
		return time.Time{}, false
	}
	return first, true
}

// Bounded returns windowEnd, or windowStart + horizon when the window is open-ended
func Bounded(windowStart time.Time, windowEnd *time.Time, horizon time.Duration) time.Time {
	if windowEnd != nil {
		return domain.DateOnly(*windowEnd)
	}
	return domain.DateOnly(windowStart.Add(horizon))
}
