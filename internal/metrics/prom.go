// SPDX-License-Identifier: Apache-2.0

// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "accounts"

// Prom groups the HTTP and database collectors registered on one registry.
type Prom struct {
	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         *prometheus.GaugeVec

	// DB
	DBQueryDuration *prometheus.HistogramVec
	DBErrorsTotal   *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewProm creates the collectors and registers them on reg. Passing a fresh
// registry in tests avoids duplicate registration panics.
func NewProm(reg *prometheus.Registry) *Prom {
	p := &Prom{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "query_duration_seconds",
				Help:      "DB operation latency (logical op, not raw SQL)",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.35, 0.5, 1, 2, 5},
			},
			[]string{"op", "status"},
		),
		DBErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "errors_total",
				Help:      "DB errors by logical op and class.",
			},
			[]string{"op", "class"},
		),
		gatherer: reg,
	}

	reg.MustRegister(
		p.RequestsTotal,
		p.RequestsDuration,
		p.InFlight,
		p.DBQueryDuration,
		p.DBErrorsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return p
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prom) Handler() http.Handler {
	return promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (p *Prom) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	code := statusLabel(status)
	p.RequestsTotal.WithLabelValues(method, route, code).Inc()
	p.RequestsDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
}

// TrackInFlight increments the in-flight gauge and returns the matching
// decrement.
func (p *Prom) TrackInFlight(method string) func() {
	g := p.InFlight.WithLabelValues(method)
	g.Inc()
	return g.Dec
}

// ObserveQuery records one logical database operation. An empty class means
// the operation succeeded.
func (p *Prom) ObserveQuery(op, class string, elapsed time.Duration) {
	status := "ok"
	if class != "" {
		status = "error"
		p.DBErrorsTotal.WithLabelValues(op, class).Inc()
	}
	p.DBQueryDuration.WithLabelValues(op, status).Observe(elapsed.Seconds())
}

func statusLabel(status int) string {
	if status == 0 {
		return "200"
	}
	return strconv.Itoa(status)
}
