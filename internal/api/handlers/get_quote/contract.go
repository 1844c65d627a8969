package get_quote

import (
	"context"

	"github.com/Brian13b/QuicoBasquetProject/internal/service/courts/models"
)

type CourtService interface {
	Quote(ctx context.Context, req *models.QuoteRequest) (*models.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
