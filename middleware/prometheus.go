package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smarttech_http_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smarttech_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	orderPlacedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smarttech_order_placed_total",
			Help: "Orders placed grouped by payment method",
		},
		[]string{"payment_method"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestTotal, httpRequestDuration, orderPlacedTotal)
}

// Prometheus 指标采集
func Prometheus() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		httpRequestTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}

// CountOrderPlaced 下单计数
func CountOrderPlaced(paymentMethod string) {
	orderPlacedTotal.WithLabelValues(paymentMethod).Inc()
}
