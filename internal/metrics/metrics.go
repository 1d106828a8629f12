package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics
var (
	// RunsTotal counts pipeline runs by terminal outcome (aggregated, no_data, error)
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_runs_total",
			Help: "Total pipeline runs by outcome",
		},
		[]string{"outcome"},
	)

	// FetchesTotal counts upstream fetches by source and status (ok, empty, error)
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_fetches_total",
			Help: "Total upstream fetches by source and status",
		},
		[]string{"source", "status"},
	)

	// FetchDuration tracks upstream fetch latency in seconds
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentiment_fetch_duration_seconds",
			Help:    "Upstream fetch duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"source"},
	)

	// PostsScored counts posts passed through the scorer
	PostsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_posts_scored_total",
			Help: "Total posts scored",
		},
	)
)

// HTTP metrics
var (
	// HTTPRequestsTotal counts dashboard requests by route and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"route", "status"},
	)

	// HTTPRequestDuration tracks request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)
