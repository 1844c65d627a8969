package subscription

import "github.com/Brian13b/QuicoBasquetProject/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
