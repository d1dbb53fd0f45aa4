// Package metrics owns the Prometheus wiring. Collectors declared through it are registered on the
// default registry when the declaring package is initialised, and exposed by Handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	Namespace = "log_stats"

	SubPipeline = "pipeline"
	SubReport   = "report"
	SubHTTP     = "http"
)

// Shared label names and values.
const (
	FieldErrorCode = "error_code"
	FieldResult    = "result"
	FieldKind      = "kind"

	ValueNoError = ""
)

// DurationBuckets spans a fast HTTP read (0.5ms) to a pipeline run over a large log (about 2 min).
var DurationBuckets = prometheus.ExponentialBuckets(0.0005, 4, 10)

func NewCounterVec(subsystem, name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)
}

func NewHistogramVec(subsystem, name, help string, labels ...string) *prometheus.HistogramVec {
	return promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
		Buckets:   DurationBuckets,
	}, labels)
}

func NewHistogram(subsystem, name, help string) prometheus.Histogram {
	return promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
		Buckets:   DurationBuckets,
	})
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
