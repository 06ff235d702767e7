// Package metrics exposes prometheus metrics for handled requests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lambda-feedback/mathy/models"
)

const namespace = "mathy"

// Recorder records request metrics into its own registry.
type Recorder struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	panicRecoveries prometheus.Counter
}

// New creates a recorder with a fresh registry, including the go runtime
// and process collectors.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total requests handled, by operation and status code",
			},
			[]string{"operation", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of handled requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		panicRecoveries: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "panic_recoveries_total",
				Help:      "Total panics recovered while handling requests",
			},
		),
	}
}

// ObserveRequest records a handled request.
func (r *Recorder) ObserveRequest(op models.Operation, status int, elapsed time.Duration) {
	r.requestsTotal.WithLabelValues(op.String(), strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(op.String()).Observe(elapsed.Seconds())
}

// ObservePanic records a recovered panic.
func (r *Recorder) ObservePanic() {
	r.panicRecoveries.Inc()
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
