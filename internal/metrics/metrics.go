// Package metrics exposes Prometheus instruments for guidance exchanges.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "journal"

// Metrics owns a dedicated registry and the guidance instruments.
// It implements guidance.Observer.
type Metrics struct {
	registry *prometheus.Registry

	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	emptyInput prometheus.Counter
}

// New creates the instruments on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "guidance",
				Name:      "requests_total",
				Help:      "Total number of guidance exchanges by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "guidance",
				Name:      "duration_seconds",
				Help:      "Guidance exchange duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.25, 2, 9), // 250ms to ~64s
			},
			[]string{"mode"},
		),
		emptyInput: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "guidance",
				Name:      "empty_input_total",
				Help:      "Total number of submissions rejected for empty text",
			},
		),
	}
}

// ObserveGuidance records one exchange.
func (m *Metrics) ObserveGuidance(modeID, outcome string, elapsed time.Duration) {
	m.requests.WithLabelValues(modeID, outcome).Inc()
	m.duration.WithLabelValues(modeID).Observe(elapsed.Seconds())
}

// ObserveEmptyInput records a submission rejected before the service.
func (m *Metrics) ObserveEmptyInput() {
	m.emptyInput.Inc()
}

// Registry returns the registry holding all instruments.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
