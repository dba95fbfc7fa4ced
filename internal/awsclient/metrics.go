package awsclient

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records client-side request metrics. A nil *Metrics records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	retries  *prometheus.CounterVec
}

// NewMetrics creates the client collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mskgo_client_requests_total",
				Help: "Total number of API calls by final status code",
			},
			[]string{"service", "operation", "code"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mskgo_client_request_duration_seconds",
				Help:    "Duration of API calls including retries",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "operation"},
		),
		retries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mskgo_client_retries_total",
				Help: "Total number of retried attempts by reason",
			},
			[]string{"service", "operation", "reason"},
		),
	}
}

func (m *Metrics) observeRequest(service, operation string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := "error"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}
	m.requests.WithLabelValues(service, operation, code).Inc()
	m.duration.WithLabelValues(service, operation).Observe(elapsed.Seconds())
}

func (m *Metrics) observeRetry(service, operation, reason string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(service, operation, reason).Inc()
}
