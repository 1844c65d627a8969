package update_court_pricing

import (
	"context"

	"github.com/Brian13b/QuicoBasquetProject/internal/service/courts/models"
)

type CourtService interface {
	UpdatePricing(ctx context.Context, req *models.UpdatePricingRequest) (*models.CourtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
