package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/suPer8Hu/defi-sim/internal/market"
	"github.com/suPer8Hu/defi-sim/internal/simulation"
)

type Metrics struct {
	gatherer prometheus.Gatherer

	RequestDuration   *prometheus.HistogramVec
	RequestTotal      *prometheus.CounterVec
	SimulationsTotal  *prometheus.CounterVec
	MarketStatusTotal *prometheus.CounterVec
}

// New registers collectors on a private registry so tests can build as many
// instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		gatherer: reg,
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "defi_sim_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "route"},
		),
		RequestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defi_sim_http_requests_total",
				Help: "Total HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		SimulationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defi_sim_simulations_total",
				Help: "Total mock simulations persisted",
			},
			[]string{"status", "error"},
		),
		MarketStatusTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "defi_sim_market_status_total",
				Help: "Market status responses by congestion tier",
			},
			[]string{"congestion"},
		),
	}
	reg.MustRegister(
		m.RequestDuration,
		m.RequestTotal,
		m.SimulationsTotal,
		m.MarketStatusTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	m.RequestTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ObserveSimulation(status simulation.Status, errorCode string) {
	m.SimulationsTotal.WithLabelValues(string(status), errorCode).Inc()
}

func (m *Metrics) ObserveMarketStatus(c market.Congestion) {
	m.MarketStatusTotal.WithLabelValues(string(c)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
