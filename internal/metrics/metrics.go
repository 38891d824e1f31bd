package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RateRequestsTotal       prometheus.Counter
	ConversionRequestsTotal prometheus.Counter

	RefreshCyclesTotal      *prometheus.CounterVec
	LastRefreshTimestamp    prometheus.Gauge
	CacheWriteFailuresTotal prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		RateRequestsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_requests_total",
				Help: "Total number of latest-rates requests",
			},
		),

		ConversionRequestsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "conversion_requests_total",
				Help: "Total number of currency conversion requests",
			},
		),

		RefreshCyclesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "refresh_cycles_total",
				Help: "Total number of rate refresh cycles by result",
			},
			[]string{"result"},
		),

		LastRefreshTimestamp: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "last_refresh_timestamp_seconds",
				Help: "Unix timestamp of the last successful rate refresh",
			},
		),

		CacheWriteFailuresTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "cache_write_failures_total",
				Help: "Total number of failed write-through cache updates",
			},
		),
	}
}
