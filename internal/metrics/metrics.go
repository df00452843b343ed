// Package metrics records roster activity with Prometheus collectors.
//
// The application has no network surface, so the registry is exported to a
// file in the Prometheus text format (node_exporter textfile collector style)
// instead of being served over HTTP.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns a private registry and the roster collectors.
// All methods are safe to call on a nil *Recorder, which records nothing.
type Recorder struct {
	registry   *prometheus.Registry
	actions    *prometheus.CounterVec
	people     prometheus.Gauge
	storeCalls *prometheus.HistogramVec
}

// New creates a Recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roster",
			Name:      "actions_total",
			Help:      "User actions by name and outcome (ok, rejected, error).",
		}, []string{"action", "outcome"}),
		people: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "roster",
			Name:      "people",
			Help:      "Number of people in the in-memory roster.",
		}),
		storeCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "roster",
			Name:      "store_call_duration_seconds",
			Help:      "Latency of person store calls.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"op"}),
	}

	r.registry.MustRegister(r.actions, r.people, r.storeCalls)
	return r
}

// ObserveAction counts one finished action. It satisfies middleware.Observer.
func (r *Recorder) ObserveAction(action, outcome string) {
	if r == nil {
		return
	}
	r.actions.WithLabelValues(action, outcome).Inc()
}

// SetPeople publishes the current roster size.
func (r *Recorder) SetPeople(n int) {
	if r == nil {
		return
	}
	r.people.Set(float64(n))
}

// ObserveStoreCall records the latency of one store operation.
func (r *Recorder) ObserveStoreCall(op string, d time.Duration) {
	if r == nil {
		return
	}
	r.storeCalls.WithLabelValues(op).Observe(d.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// WriteTextfile writes every collected metric to path in the Prometheus text
// format. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
