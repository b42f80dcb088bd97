// Package metrics defines the Prometheus collectors exported by the API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fashiontrends_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fashiontrends_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "route"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fashiontrends_http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	// Live feed
	FeedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fashiontrends_feed_clients",
			Help: "Current number of connected trend feed clients",
		},
	)

	FeedBroadcastsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fashiontrends_feed_broadcasts_total",
			Help: "Total number of trending-color snapshots pushed to feed clients",
		},
	)
)

// RecordHTTPRequest records a completed HTTP request
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge
func TrackActiveRequest(active bool) {
	if active {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}
