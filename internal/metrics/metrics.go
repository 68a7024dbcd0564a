// Package metrics provides Prometheus metrics collection for the composition service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// DishSubmissionsTotal tracks dish create/update submissions by outcome.
	DishSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dish_submissions_total",
			Help: "Total number of dish composition submissions",
		},
		[]string{"operation", "status"},
	)

	// PickMutationsTotal tracks cart-side single-pick mutations by outcome.
	PickMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pick_mutations_total",
			Help: "Total number of cart pick mutations",
		},
		[]string{"status"},
	)

	// TotalsComputationDuration tracks aggregation duration.
	TotalsComputationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "totals_computation_duration_seconds",
			Help:    "Selection totals aggregation duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// CatalogSnapshotAge tracks the age of the cached catalog snapshot.
	CatalogSnapshotAge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_snapshot_age_seconds",
			Help: "Age of the in-memory catalog snapshot",
		},
	)

	// CatalogLoadsTotal tracks catalog snapshot loads by result.
	CatalogLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Total number of catalog snapshot loads",
		},
		[]string{"result"},
	)
)

// RecordDishSubmission records a dish submission with its duration-independent outcome.
func RecordDishSubmission(operation, status string) {
	DishSubmissionsTotal.WithLabelValues(operation, status).Inc()
}

// RecordPickMutation records a cart pick mutation outcome.
func RecordPickMutation(status string) {
	PickMutationsTotal.WithLabelValues(status).Inc()
}

// RecordTotalsComputation records one aggregation pass.
func RecordTotalsComputation(duration time.Duration) {
	TotalsComputationDuration.Observe(duration.Seconds())
}

// SetCatalogSnapshotAge updates the snapshot age gauge.
func SetCatalogSnapshotAge(age time.Duration) {
	CatalogSnapshotAge.Set(age.Seconds())
}

// RecordCatalogLoad records a catalog snapshot load attempt.
func RecordCatalogLoad(result string) {
	CatalogLoadsTotal.WithLabelValues(result).Inc()
}

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		HTTPRequestDuration.WithLabelValues(c.Request.Method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(c.Request.Method, path, statusCode).Inc()
	}
}
