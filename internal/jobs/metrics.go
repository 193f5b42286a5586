package jobs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "transport_sync",
		Subsystem: "jobs",
		Name:      "runs_total",
		Help:      "Total number of scheduled job runs.",
	}, []string{"hook", "outcome"})

	jobRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "transport_sync",
		Subsystem: "jobs",
		Name:      "run_duration_seconds",
		Help:      "Scheduled job run durations in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"hook"})
)
