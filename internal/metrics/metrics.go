// Package metrics exposes Prometheus counters for session resolution and
// the mock domain services.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the portal collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry    *prometheus.Registry
	resolutions *prometheus.CounterVec
	stale       prometheus.Counter
	writes      *prometheus.CounterVec
}

// New creates the collectors on a dedicated registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "session_resolutions_total",
			Help:      "Session resolutions by terminal state.",
		}, []string{"state"}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "session_stale_resolutions_total",
			Help:      "Resolutions discarded because a newer one had started.",
		}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "mock_collection_writes_total",
			Help:      "Writes to mock collections by collection key.",
		}, []string{"collection"}),
	}
	m.registry.MustRegister(
		m.resolutions,
		m.stale,
		m.writes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveResolution counts a finished resolution
func (m *Metrics) ObserveResolution(state string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(state).Inc()
}

// ObserveStale counts a discarded resolution
func (m *Metrics) ObserveStale() {
	if m == nil {
		return
	}
	m.stale.Inc()
}

// ObserveWrite counts a collection write
func (m *Metrics) ObserveWrite(collection string) {
	if m == nil {
		return
	}
	m.writes.WithLabelValues(collection).Inc()
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
