package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Load result label values.
const (
	LoadResultSuccess             = "success"
	LoadResultIOError             = "io_error"
	LoadResultSubstitutionError   = "substitution_error"
	LoadResultParseError          = "parse_error"
	LoadResultDuplicateIdentifier = "duplicate_identifier"
	LoadResultUnknown             = "unknown"
)

// LoadMetrics holds Prometheus metrics for configuration loading.
type LoadMetrics struct {
	loadsTotal   *prometheus.CounterVec
	loadDuration prometheus.Histogram
	entities     *prometheus.GaugeVec
	registry     *prometheus.Registry
}

// NewLoadMetrics creates a new LoadMetrics instance with its own registry.
func NewLoadMetrics(namespace string) *LoadMetrics {
	if namespace == "" {
		namespace = "vigil"
	}

	m := &LoadMetrics{
		registry: prometheus.NewRegistry(),
	}

	m.loadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "loads_total",
			Help:      "Total number of configuration loads by result",
		},
		[]string{"result"},
	)

	m.loadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "load_duration_seconds",
			Help:      "Configuration load duration in seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	m.entities = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "entities",
			Help: "Number of configured entities " +
				"(service, group, node)",
		},
		[]string{"kind"},
	)

	m.registry.MustRegister(m.loadsTotal, m.loadDuration, m.entities)

	return m
}

// RecordLoad records the outcome of one configuration load.
func (m *LoadMetrics) RecordLoad(result string, duration time.Duration) {
	m.loadsTotal.WithLabelValues(result).Inc()
	m.loadDuration.Observe(duration.Seconds())
}

// SetTopology records the size of the loaded topology.
func (m *LoadMetrics) SetTopology(services, groups, nodes int) {
	m.entities.WithLabelValues("service").Set(float64(services))
	m.entities.WithLabelValues("group").Set(float64(groups))
	m.entities.WithLabelValues("node").Set(float64(nodes))
}

// Registry returns the Prometheus registry.
func (m *LoadMetrics) Registry() *prometheus.Registry {
	return m.registry
}
