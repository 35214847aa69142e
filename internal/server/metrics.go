package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/bigshift/internal/bignum"
)

const metricsNamespace = "bigshift"

// Metrics holds the Prometheus collectors of one server. Each instance owns
// its registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	activeRequests  prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	shiftsTotal     *prometheus.CounterVec
	shiftBits       prometheus.Histogram
}

// NewMetrics creates and registers the server collectors along with the Go
// runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "active_requests",
			Help:      "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "HTTP requests by path and status code.",
		}, []string{"path", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"path"}),
		shiftsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "shifts_total",
			Help:      "Shift operations by outcome.",
		}, []string{"status"}),
		shiftBits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "shift_bits",
			Help:      "Requested shift amounts in bits.",
			Buckets:   prometheus.LinearBuckets(0, bignum.W, bignum.CapacityWords+1),
		}),
	}
	reg.MustRegister(
		m.activeRequests,
		m.requestsTotal,
		m.requestDuration,
		m.shiftsTotal,
		m.shiftBits,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	return m
}

// IncrementActiveRequests marks the start of a request.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests marks the end of a request.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveRequest records a finished request.
func (m *Metrics) ObserveRequest(path string, code int, seconds float64) {
	m.requestsTotal.WithLabelValues(path, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(path).Observe(seconds)
}

// ObserveShift records the outcome of one shift.
func (m *Metrics) ObserveShift(status bignum.Status, shift uint) {
	m.shiftsTotal.WithLabelValues(status.String()).Inc()
	m.shiftBits.Observe(float64(shift))
}

// WritePrometheus serves the registry in the Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
