package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	messagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transport_sync",
			Subsystem: "kafka_consumer",
			Name:      "messages_processed_total",
			Help:      "Total number of successfully processed order events",
		},
		[]string{"type"},
	)

	messagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transport_sync",
			Subsystem: "kafka_consumer",
			Name:      "messages_failed_total",
			Help:      "Total number of failed order event processing attempts",
		},
		[]string{"type"},
	)

	messagesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "transport_sync",
			Subsystem: "kafka_consumer",
			Name:      "messages_dlq_total",
			Help:      "Total number of order events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "transport_sync",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	messageProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "transport_sync",
			Subsystem: "kafka_consumer",
			Name:      "message_processing_duration_seconds",
			Help:      "Histogram of order event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	messagesInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "transport_sync",
			Subsystem: "kafka_consumer",
			Name:      "messages_in_progress",
			Help:      "Number of order events currently being processed",
		},
	)
)

var (
	actionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transport_sync",
			Subsystem: "actions",
			Name:      "dispatched_total",
			Help:      "Total number of dispatched order actions by outcome",
		},
		[]string{"action", "status"},
	)

	actionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "transport_sync",
			Subsystem: "actions",
			Name:      "duration_seconds",
			Help:      "Histogram of order action durations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"action"},
	)

	statusEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transport_sync",
			Subsystem: "kafka_producer",
			Name:      "status_events_total",
			Help:      "Total number of transport status events written",
		},
		[]string{"outcome"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		messagesProcessed,
		messagesFailed,
		messagesDLQ,
		commitErrors,
		messageProcessingDuration,
		messagesInProgress,

		actionsTotal,
		actionDuration,
		statusEventsPublished,
	)
}
