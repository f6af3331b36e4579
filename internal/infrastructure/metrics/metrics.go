package metrics

import (
	"time"

	"github.com/greenlens/backend/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's prometheus collectors
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	AnalysesTotal       *prometheus.CounterVec
	AnalysisDuration    *prometheus.HistogramVec
	RateLimitedTotal    prometheus.Counter
}

// New creates the collectors and registers them with reg
func New(prefix string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		AnalysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_analyses_total",
				Help: "Total number of panel analyses by outcome",
			},
			[]string{"section", "outcome"},
		),
		AnalysisDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_analysis_duration_seconds",
				Help:    "Duration of panel analyses including simulated latency",
				Buckets: []float64{0.1, 0.5, 1, 1.5, 2, 2.5, 3, 5},
			},
			[]string{"section"},
		),
		RateLimitedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AnalysesTotal,
		m.AnalysisDuration,
		m.RateLimitedTotal,
	)
	return m
}

// ObserveHTTP records a finished HTTP request
func (m *Metrics) ObserveHTTP(method, path, status string, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
}

// ObserveAnalysis implements domain.AnalysisObserver
func (m *Metrics) ObserveAnalysis(section domain.Section, outcome string, elapsed time.Duration) {
	m.AnalysesTotal.WithLabelValues(string(section), outcome).Inc()
	if outcome == domain.OutcomeSuccess {
		m.AnalysisDuration.WithLabelValues(string(section)).Observe(elapsed.Seconds())
	}
}

// ObserveRateLimited counts a rejected request
func (m *Metrics) ObserveRateLimited() {
	m.RateLimitedTotal.Inc()
}
