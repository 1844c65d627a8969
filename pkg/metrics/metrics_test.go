package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "quico-test")

	m.RecordConflict("booking")
	m.RecordConflict("booking")
	m.RecordConflict("subscription")
	m.RecordExpired("scheduler", 3)
	m.RecordExpired("scheduler", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ConflictsTotal.WithLabelValues("booking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConflictsTotal.WithLabelValues("subscription")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SubscriptionsExpired.WithLabelValues("scheduler")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordConflict("booking")
		m.RecordExpired("admin", 1)
	})
}
