package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the draft API.
type Metrics struct {
	registry           *prometheus.Registry
	requestsTotal      prometheus.Counter
	draftsCreatedTotal prometheus.Counter
	segmentsAddedTotal prometheus.Counter
	activeDrafts       prometheus.Gauge
	errorsTotal        prometheus.Counter
}

// New creates and registers Prometheus metrics for the draft API.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "draft_requests_total",
		Help: "Total number of HTTP requests received",
	})
	draftsCreatedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "drafts_created_total",
		Help: "Total number of draft sessions created",
	})
	segmentsAddedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "segments_added_total",
		Help: "Total number of segments successfully added to tracks",
	})
	activeDrafts := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "active_drafts",
		Help: "Number of draft sessions currently open in the registry",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "draft_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})

	registry.MustRegister(
		requestsTotal,
		draftsCreatedTotal,
		segmentsAddedTotal,
		activeDrafts,
		errorsTotal,
	)

	return &Metrics{
		registry:           registry,
		requestsTotal:      requestsTotal,
		draftsCreatedTotal: draftsCreatedTotal,
		segmentsAddedTotal: segmentsAddedTotal,
		activeDrafts:       activeDrafts,
		errorsTotal:        errorsTotal,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// IncDraftsCreated increments the drafts created counter.
func (m *Metrics) IncDraftsCreated() {
	m.draftsCreatedTotal.Inc()
}

// IncSegmentsAdded increments the segments added counter.
func (m *Metrics) IncSegmentsAdded() {
	m.segmentsAddedTotal.Inc()
}

// SetActiveDrafts sets the open sessions gauge.
func (m *Metrics) SetActiveDrafts(n int) {
	m.activeDrafts.Set(float64(n))
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values (e.g.
// active drafts).
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
