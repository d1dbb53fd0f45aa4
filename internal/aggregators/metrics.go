package aggregators

import (
	"log-stats/internal/shared/metrics"
)

const (
	keyKindStatus = "status"
	keyKindHour   = "hour"
	keyKindIP     = "ip"
)

// metricDistinctKeysCreatedTotal tracks the aggregator's memory growth. kind="ip" is the dominant
// cost on large inputs; status and hour keys stay small.
var metricDistinctKeysCreatedTotal = metrics.NewCounterVec(
	metrics.SubReport,
	"distinct_keys_created_total",
	"Keys created in the running statistics, by kind (status, hour, ip).",
	metrics.FieldKind,
)
