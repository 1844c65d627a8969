package sweep_expired

import (
	"context"

	sweepExpired "github.com/Brian13b/QuicoBasquetProject/internal/usecase/sweep_expired"
)

type SweepUseCase interface {
	Execute(ctx context.Context, req *sweepExpired.Request) (*sweepExpired.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
