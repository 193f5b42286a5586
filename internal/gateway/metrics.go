package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "transport_sync",
		Subsystem: "provider",
		Name:      "requests_total",
		Help:      "Total number of requests to the logistics provider API.",
	}, []string{"operation", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "transport_sync",
		Subsystem: "provider",
		Name:      "request_duration_seconds",
		Help:      "Logistics provider API latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)
