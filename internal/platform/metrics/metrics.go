// Package metrics exposes Prometheus instrumentation for the task board:
// counters fed by task mutation events and HTTP request timings.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	registry *prometheus.Registry

	TaskMutations       *prometheus.CounterVec
	AuditWriteFailures  prometheus.Counter
	HTTPRequestDuration *prometheus.HistogramVec
}

var _ events.EventHandler = (*Metrics)(nil)

// New creates all metrics on a dedicated registry, alongside the standard
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		TaskMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "taskboard_task_mutations_total",
			Help: "Total number of applied task mutations by action",
		}, []string{"action"}),
		AuditWriteFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "taskboard_audit_write_failures_total",
			Help: "Total number of task mutations applied without an audit entry",
		}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "taskboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route", "status"}),
	}
}

// HandleEvent counts a task mutation. Mutations whose audit entry failed
// are also counted as audit write failures.
func (m *Metrics) HandleEvent(_ context.Context, event *events.MutationEvent) error {
	m.TaskMutations.WithLabelValues(string(event.Action)).Inc()
	if !event.Audited {
		m.AuditWriteFailures.Inc()
	}
	return nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware observes request durations. Routes are labelled by their chi
// pattern so path parameters do not explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.HTTPRequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}
