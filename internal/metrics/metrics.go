package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, path and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and path
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// CasesCreatedTotal counts new recovery cases
	CasesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cases_created_total",
		Help: "Total number of recovery cases created",
	})

	// CasesAssignedTotal counts case assignments to agents
	CasesAssignedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cases_assigned_total",
		Help: "Total number of cases assigned to agents",
	})

	// CasesSolvedTotal counts completed cases
	CasesSolvedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cases_solved_total",
		Help: "Total number of cases marked solved",
	})

	// PaymentsRecordedTotal counts recorded payments by method
	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_recorded_total",
			Help: "Total number of payments recorded",
		},
		[]string{"method"},
	)
)
