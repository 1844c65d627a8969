package conflicts

import (
	"errors"
	"fmt"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
)

// ErrConflict candidate collides with an existing commitment
var ErrConflict = errors.New("conflicts: time slot already taken")

// EntityKind what the candidate collided with
type EntityKind string

const (
	KindBooking      EntityKind = "booking"
	KindSubscription EntityKind = "subscription"
)

// ConflictError details of the first collision found
type ConflictError struct {
	Kind     EntityKind
	EntityID int64
	Date     time.Time
	Range    domain.TimeRange
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s id=%d on %s at %s",
		ErrConflict, e.Kind, e.EntityID, e.Date.Format(domain.DateFormat), e.Range)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// AsConflict extracts the collision details from err
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
