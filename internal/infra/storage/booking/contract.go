package booking

import (
	"github.com/Brian13b/QuicoBasquetProject/pkg/dbmetrics"
)

// DBExecutor reused from dbmetrics so a *sql.DB, *dbmetrics.DB or an open transaction all fit
type DBExecutor = dbmetrics.DBExecutor
