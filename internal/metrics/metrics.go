package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	WelcomesServed  prometheus.Counter
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests from first byte read to handler return.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		WelcomesServed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "welcome_messages_served_total",
			Help: "Total number of welcome messages returned by the root endpoint.",
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.WelcomesServed,
	)

	return m
}

// Hooks returns the callbacks expected by the HTTP layer.
// Keeps the prometheus observation calls in one place so handlers and
// middleware stay free of prometheus types.
func (m *Metrics) Hooks() (
	onRequest func(method, route string, status int, latency time.Duration),
	onWelcome func(),
) {
	onRequest = func(method, route string, status int, latency time.Duration) {
		m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(method, route).Observe(latency.Seconds())
	}
	onWelcome = func() {
		m.WelcomesServed.Inc()
	}
	return
}
