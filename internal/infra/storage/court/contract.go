package court

import "github.com/Brian13b/QuicoBasquetProject/pkg/dbmetrics"

// DBExecutor reused from dbmetrics
type DBExecutor = dbmetrics.DBExecutor
