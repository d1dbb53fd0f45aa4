package pipelines

import (
	"log-stats/internal/shared/metrics"
)

const (
	resultAccepted = "accepted"
	resultFiltered = "filtered"
	resultSkipped  = "skipped"
)

var (
	metricLinesTotal = metrics.NewCounterVec(
		metrics.SubPipeline,
		"lines_total",
		"Input lines by outcome: accepted into the report, excluded by filters, or skipped as unreadable or malformed.",
		metrics.FieldResult,
	)

	metricRunsTotal = metrics.NewCounterVec(
		metrics.SubPipeline,
		"runs_total",
		"Pipeline runs by error code; an empty code is a successful run.",
		metrics.FieldErrorCode,
	)

	metricRunDuration = metrics.NewHistogram(
		metrics.SubPipeline,
		"run_duration_seconds",
		"Wall time of successful pipeline runs.",
	)
)
