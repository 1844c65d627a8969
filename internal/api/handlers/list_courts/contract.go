package list_courts

import (
	"context"

	"github.com/Brian13b/QuicoBasquetProject/internal/service/courts/models"
)

type CourtService interface {
	ListCourts(ctx context.Context) (*models.CourtListResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
