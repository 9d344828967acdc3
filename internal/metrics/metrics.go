package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequests counts served requests by method, route pattern and status.
var HTTPRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "zeestore_http_requests_total",
		Help: "Total number of HTTP requests served",
	},
	[]string{"method", "route", "status"},
)

var HTTPDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "zeestore_http_request_duration_seconds",
		Help:    "Latency of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// AuthFailures counts rejected credential checks per login endpoint.
var AuthFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "zeestore_auth_failures_total",
		Help: "Total number of failed login attempts",
	},
	[]string{"endpoint"},
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, AuthFailures)
}
