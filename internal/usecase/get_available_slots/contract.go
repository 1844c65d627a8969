package get_available_slots

import (
	"context"
	"time"

	"github.com/Brian13b/QuicoBasquetProject/internal/domain"
	"github.com/Brian13b/QuicoBasquetProject/internal/service/conflicts"
)

// CourtRepository courts storage
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// OccupancyReader everything taking court time on a date
type OccupancyReader interface {
	Occupied(ctx context.Context, courtID int64, date time.Time) ([]conflicts.Commitment, error)
}

// TimeProvider current time source
type TimeProvider interface {
	Now() time.Time
}

// Logger logging facade
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
