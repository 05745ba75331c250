package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors exported on /metrics.
type Metrics struct {
	CheckoutsTotal      *prometheus.CounterVec
	CheckoutDuration    *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	Registry            *prometheus.Registry
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		CheckoutsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Checkout session requests by booking kind and outcome",
		}, []string{"kind", "outcome"}),
		CheckoutDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "checkout_session_duration_seconds",
			Help:    "Time spent handling a checkout request, provider call included",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		Registry: reg,
	}

	reg.MustRegister(
		m.CheckoutsTotal,
		m.CheckoutDuration,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCheckout records one finished checkout attempt.
func (m *Metrics) ObserveCheckout(kind, outcome string, seconds float64) {
	m.CheckoutsTotal.WithLabelValues(kind, outcome).Inc()
	m.CheckoutDuration.WithLabelValues(kind).Observe(seconds)
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
