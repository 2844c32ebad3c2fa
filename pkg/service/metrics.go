package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics for the query service.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "docnav").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for query duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "docnav",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus metrics for the query service.
//
// Metrics collected:
//   - docnav_queries_total: Counter of queries by operation and status
//   - docnav_query_duration_seconds: Histogram of query duration by operation
//   - docnav_rebuilds_total: Counter of index rebuilds by status
//   - docnav_index_pages: Gauge of navigable pages per channel
type Metrics struct {
	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	rebuildsTotal *prometheus.CounterVec
	indexPages    *prometheus.GaugeVec
}

// NewMetrics registers the query service metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		queriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "queries_total",
			Help:        "Total number of navigation queries processed",
			ConstLabels: config.ConstLabels,
		}, []string{"operation", "status"}),

		queryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "query_duration_seconds",
			Help:        "Navigation query duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"operation"}),

		rebuildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "rebuilds_total",
			Help:        "Total number of index rebuilds",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		indexPages: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "index_pages",
			Help:        "Number of navigable pages in the current index",
			ConstLabels: config.ConstLabels,
		}, []string{"channel"}),
	}
}

// recordQuery records one completed query.
func (m *Metrics) recordQuery(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.queriesTotal.WithLabelValues(operation, status).Inc()
	m.queryDuration.WithLabelValues(operation).Observe(seconds)
}

// recordRebuild records the outcome of an index rebuild.
func (m *Metrics) recordRebuild(status string) {
	if m == nil {
		return
	}
	m.rebuildsTotal.WithLabelValues(status).Inc()
}

// recordIndexSize records the page counts of a freshly installed index.
func (m *Metrics) recordIndexSize(stable, canary int) {
	if m == nil {
		return
	}
	m.indexPages.WithLabelValues("stable").Set(float64(stable))
	m.indexPages.WithLabelValues("canary").Set(float64(canary))
}
