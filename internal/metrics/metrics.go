package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts requests by route and status code
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discuss_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "code"})

	// HTTPDuration tracks request latency by route
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "discuss_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
	}, []string{"route"})

	// CommentsMerged counts newly seen comments merged into the store
	CommentsMerged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "discuss_comments_merged_total",
		Help: "Total newly seen comments merged into the comment store",
	})

	// SubmissionsLoaded counts full (re)loads of a submission's comments
	SubmissionsLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "discuss_submissions_loaded_total",
		Help: "Total submissions initialized in the comment store",
	})

	// CommentPages counts comment pages served by sort mode
	CommentPages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discuss_comment_pages_total",
		Help: "Total comment pages served by sort mode",
	}, []string{"sort"})
)
