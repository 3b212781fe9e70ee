package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arduchat_http_requests_total",
		Help: "HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	chatDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "arduchat_chat_duration_seconds",
		Help:    "End-to-end chat request duration per provider, including the vendor call.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})
)
