// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	AllocationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allocation_runs_total",
			Help: "Allocation runs by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	AllocatedStudents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allocation_students_total",
			Help: "Students placed into groups by method",
		},
		[]string{"method"},
	)

	NotificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_emails_total",
			Help: "Notification emails by recipient kind and outcome",
		},
		[]string{"recipient", "outcome"},
	)

	NotificationSendDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "notification_send_duration_seconds",
			Help:    "Duration of individual notification sends",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)
)

var registerOnce sync.Once

// Init registers every collector with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			AllocationRuns,
			AllocatedStudents,
			NotificationsSent,
			NotificationSendDuration,
		)
	})
}

// PrometheusHandler serves the default registry
func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
