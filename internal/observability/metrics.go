package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes Prometheus collectors for the HTTP and auth paths.
type Metrics struct {
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authAttempts    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

// NewMetrics registers collectors on the given registry. A nil registry
// falls back to the default one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		requestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iwil_http_requests_total",
			Help: "HTTP requests by path, method and status.",
		}, []string{"path", "method", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "iwil_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
		authAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iwil_auth_attempts_total",
			Help: "Authentication attempts by outcome.",
		}, []string{"outcome"}),
		errorTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iwil_request_errors_total",
			Help: "Request errors by path, method and error code.",
		}, []string{"path", "method", "code"}),
	}
}

// RecordRequest observes one served request.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError counts a request that ended in a typed error.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errorTotal.WithLabelValues(path, method, code).Inc()
}

// RecordAuthAttempt counts a login outcome ("success", "invalid_credentials",
// "deactivated", "rate_limited").
func (m *Metrics) RecordAuthAttempt(outcome string) {
	if m == nil {
		return
	}
	m.authAttempts.WithLabelValues(outcome).Inc()
}
