package sweep_expired

import "time"

// Who started a sweep, used as the metrics label
const (
	TriggerScheduler = "scheduler"
	TriggerAdmin     = "admin"
)

// Request sweep run
type Request struct {
	AsOf    time.Time // zero = today
	Trigger string
}

// Response what the sweep changed
type Response struct {
	AsOf            string  `json:"asOf"`
	Expired         []int64 `json:"expired"`
	RebalancedUsers []int64 `json:"rebalancedUsers"`
}
