package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dashboard service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec   // labels: method, path, status
	RequestDuration *prometheus.HistogramVec // labels: method, path

	// Dataset state, set once after the first load.
	DatasetRecords    *prometheus.GaugeVec // labels: layer={deaths,pumps}
	DatasetLoadFailed prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cholera_dashboard",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route, and status code.",
		}, []string{"method", "path", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cholera_dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"method", "path"}),
		DatasetRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "cholera_dashboard",
			Name:      "dataset_records",
			Help:      "Loaded records per layer.",
		}, []string{"layer"}),
		DatasetLoadFailed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cholera_dashboard",
			Name:      "dataset_load_failed",
			Help:      "1 when the dataset failed to load, 0 otherwise.",
		}),
	}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.DatasetRecords,
		m.DatasetLoadFailed,
	)
	return m
}

// NewMetricsForTesting creates Metrics with no registration to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// Middleware records request count and duration per route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.RequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}

// ObserveDataset records the outcome of the dataset load
func (m *Metrics) ObserveDataset(deaths, pumps int, failed bool) {
	m.DatasetRecords.WithLabelValues("deaths").Set(float64(deaths))
	m.DatasetRecords.WithLabelValues("pumps").Set(float64(pumps))
	if failed {
		m.DatasetLoadFailed.Set(1)
	} else {
		m.DatasetLoadFailed.Set(0)
	}
}
