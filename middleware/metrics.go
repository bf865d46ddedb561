package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itemstore_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "itemstore_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func Metrics(context *gin.Context) {
	start := time.Now()
	context.Next()

	route := context.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := context.Request.Method
	requestsTotal.WithLabelValues(method, route, strconv.Itoa(context.Writer.Status())).Inc()
	requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}
