package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	AuditEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_events_total",
			Help: "Audit events submitted to the recorder",
		},
		[]string{"action", "status"},
	)
	AuditWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_write_failures_total",
			Help: "Failed audit persistence attempts (before retry)",
		},
	)
	AuditEventsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_events_dropped_total",
			Help: "Audit events dropped after retry exhaustion or enqueue failure",
		},
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
	WorkerRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "worker_retries_total",
			Help: "Jobs rescheduled after a failed attempt",
		},
	)
)

// Handler serves /metrics.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(AuditEventsTotal)
	prometheus.MustRegister(AuditWriteFailures)
	prometheus.MustRegister(AuditEventsDropped)
	prometheus.MustRegister(WorkerQueueDepth)
	prometheus.MustRegister(WorkerRetriesTotal)
}
