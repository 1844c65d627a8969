package domain

import (
	"fmt"
	"time"
)

// Weekday day of week with Monday = 0 ... Sunday = 6
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}

// WeekdayOf returns the weekday of t
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// Validate checks the [0, 6] range
func (w Weekday) Validate() error {
	if w < Monday || w > Sunday {
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, int(w))
	}
	return nil
}

// TimeWeekday converts to the time package convention
func (w Weekday) TimeWeekday() time.Weekday {
	return time.Weekday((int(w) + 1) % 7)
}

func (w Weekday) String() string {
	if w.Validate() != nil {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// DateOnly truncates t to midnight UTC of its calendar date
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MustDate parses YYYY-MM-DD, for literals
func MustDate(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}
