package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the client.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Retries         prometheus.Counter
	SessionClears   prometheus.Counter
}

// New creates and registers all client metrics. Pass a fresh registry in
// tests; nil registers against the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "acodelab_client_requests_total",
			Help: "Total API requests issued by the client, by method and result code",
		}, []string{"method", "code"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "acodelab_client_request_duration_seconds",
			Help:    "API request latency as observed by the client",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		Retries: factory.NewCounter(prometheus.CounterOpts{
			Name: "acodelab_client_retries_total",
			Help: "Total retried API requests",
		}),
		SessionClears: factory.NewCounter(prometheus.CounterOpts{
			Name: "acodelab_client_session_clears_total",
			Help: "Total forced session clears triggered by 401 responses",
		}),
	}
}

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(method, code string, elapsed time.Duration) {
	m.Requests.WithLabelValues(method, code).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
