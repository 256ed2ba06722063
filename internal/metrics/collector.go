package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "realty"

// Collector holds all metrics for the realty service
type Collector struct {
	registry *prometheus.Registry

	calculations     *prometheus.CounterVec
	validationErrors *prometheus.CounterVec
	leadsCaptured    *prometheus.CounterVec
	rateFetches      *prometheus.CounterVec
	currentRate      *prometheus.GaugeVec
	requestDuration  *prometheus.HistogramVec
}

// NewCollector creates a collector backed by its own registry
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Total number of successful calculations",
		}, []string{"calculator"}),
		validationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_errors_total",
			Help:      "Total number of rejected calculator inputs",
		}, []string{"calculator"}),
		leadsCaptured: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_captured_total",
			Help:      "Total number of captured leads",
		}, []string{"source"}),
		rateFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rates",
			Name:      "fetches_total",
			Help:      "Total number of market rate feed fetches",
		}, []string{"status"}),
		currentRate: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rates",
			Name:      "current_percent",
			Help:      "Most recent average fixed mortgage rate",
		}, []string{"term"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}, []string{"route", "method", "status"}),
	}
}

// RecordCalculation records a successful calculation
func (c *Collector) RecordCalculation(calculator string) {
	c.calculations.WithLabelValues(calculator).Inc()
}

// RecordValidationError records rejected input
func (c *Collector) RecordValidationError(calculator string) {
	c.validationErrors.WithLabelValues(calculator).Inc()
}

// RecordLead records a captured lead
func (c *Collector) RecordLead(source string) {
	c.leadsCaptured.WithLabelValues(source).Inc()
}

// RecordRateFetch records a feed fetch. On success the gauges are updated.
func (c *Collector) RecordRateFetch(err error, thirty, fifteen float64) {
	if err != nil {
		c.rateFetches.WithLabelValues("error").Inc()
		return
	}
	c.rateFetches.WithLabelValues("ok").Inc()
	c.currentRate.WithLabelValues("30").Set(thirty)
	c.currentRate.WithLabelValues("15").Set(fifteen)
}

// RecordRequest records HTTP request duration
func (c *Collector) RecordRequest(route, method string, status int, d time.Duration) {
	c.requestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(d.Seconds())
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collected metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
