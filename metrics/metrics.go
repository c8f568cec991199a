package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cat_exhibition_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cat_exhibition_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cat_exhibition_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cat_exhibition_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cat_exhibition_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// CatsCreated counts the cats added to the exhibition
	CatsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cat_exhibition_cats_created_total",
			Help: "Total number of cats created",
		},
	)

	// RatingsSubmitted counts accepted rating submissions
	RatingsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cat_exhibition_ratings_submitted_total",
			Help: "Total number of ratings accepted",
		},
	)

	// CacheHits counts the number of breed list cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cat_exhibition_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	// CacheMisses counts the number of breed list cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cat_exhibition_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cat_exhibition_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cat_exhibition_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
