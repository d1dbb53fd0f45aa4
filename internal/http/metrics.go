package http

import (
	"log-stats/internal/shared/metrics"
)

const (
	labelMethod = "method"
	labelRoute  = "route"
	labelStatus = "status"
)

var (
	metricRequestsTotal = metrics.NewCounterVec(
		metrics.SubHTTP,
		"requests_total",
		"HTTP requests by method, route pattern, status and error code.",
		labelMethod, labelRoute, labelStatus, metrics.FieldErrorCode,
	)

	metricRequestDuration = metrics.NewHistogramVec(
		metrics.SubHTTP,
		"request_duration_seconds",
		"HTTP request latency by method, route pattern and status.",
		labelMethod, labelRoute, labelStatus,
	)
)
