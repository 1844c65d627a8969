package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service Prometheus collectors
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec

	ConflictsTotal       *prometheus.CounterVec
	SubscriptionsExpired *prometheus.CounterVec
}

// New registers collectors in the default registry (exposed by promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry registers collectors in reg
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUse: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdle: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: constLabels,
		}, []string{"db"}),

		ConflictsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "court_conflicts_total",
			Help:        "Rejected bookings and subscriptions by colliding entity kind",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		SubscriptionsExpired: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "subscriptions_expired_total",
			Help:        "Subscriptions flipped to vencida by the sweep",
			ConstLabels: constLabels,
		}, []string{"trigger"}),
	}
}

// RecordConflict counts one rejected request; nil-safe so callers can run without metrics
func (m *Metrics) RecordConflict(kind string) {
	if m == nil {
		return
	}
	m.ConflictsTotal.WithLabelValues(kind).Inc()
}

// RecordExpired counts subscriptions expired by one sweep run
func (m *Metrics) RecordExpired(trigger string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SubscriptionsExpired.WithLabelValues(trigger).Add(float64(n))
}
