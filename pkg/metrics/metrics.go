// Package metrics exposes Prometheus instrumentation for the admin API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the registry and the collectors used across the service.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	userDeletionsTotal    *prometheus.CounterVec
	userRestorationsTotal prometheus.Counter
	notificationsTotal    *prometheus.CounterVec
}

// New creates a Metrics with its own registry so tests never collide on
// the global default.
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "HTTP requests by method, path and status.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		userDeletionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "user_deletions_total",
			Help:        "User deletions by delete type.",
			ConstLabels: constLabels,
		}, []string{"delete_type"}),
		userRestorationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "user_restorations_total",
			Help:        "Soft-deleted users restored.",
			ConstLabels: constLabels,
		}),
		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_dispatched_total",
			Help:        "Notifications handed to the push sender.",
			ConstLabels: constLabels,
		}, []string{"type"}),
	}

	registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.userDeletionsTotal,
		m.userRestorationsTotal,
		m.notificationsTotal,
	)

	return m
}

// Handler returns the scrape endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one handled request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordUserDeletion counts a completed deletion.
func (m *Metrics) RecordUserDeletion(deleteType string) {
	m.userDeletionsTotal.WithLabelValues(deleteType).Inc()
}

// RecordUserRestoration counts a completed restoration.
func (m *Metrics) RecordUserRestoration() {
	m.userRestorationsTotal.Inc()
}

// RecordNotificationDispatched counts a notification handed to the sender.
func (m *Metrics) RecordNotificationDispatched(notificationType string) {
	m.notificationsTotal.WithLabelValues(notificationType).Inc()
}
