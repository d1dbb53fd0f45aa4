package aggregators

import (
	"strconv"

	"log-stats/internal/models"
)

// Aggregator owns the running statistics of one pipeline run. It is not safe for concurrent use;
// a run feeds it sequentially and hands it to a StatsReporter once the input is exhausted.
//
// The maps are never exposed. Every accepted entry increments exactly one key in each of byStatus,
// byHour and ipCounts, so their sums always equal totalRequests.
type Aggregator struct {
	totalRequests int64
	totalBytes    uint64
	skippedLines  int64
	errorCount    int64

	byStatus map[string]int64
	byHour   map[string]int64
	ipCounts map[string]int64
	// ipOrder lists IPs in first-seen order; it is the tie-break for equal counts in top IPs.
	ipOrder []string
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		byStatus: make(map[string]int64),
		byHour:   make(map[string]int64),
		ipCounts: make(map[string]int64),
	}
}

// Update adds one entry that already passed the filters.
func (a *Aggregator) Update(entry *models.LogEntry) {
	a.totalRequests++
	a.totalBytes += entry.BodyBytes

	increment(a.byStatus, strconv.FormatUint(uint64(entry.StatusCode), 10), keyKindStatus)
	increment(a.byHour, models.FormatHourBucket(entry.Timestamp), keyKindHour)
	if increment(a.ipCounts, entry.ClientIP, keyKindIP) {
		a.ipOrder = append(a.ipOrder, entry.ClientIP)
	}

	// Independent of the status filter in effect.
	if entry.IsError() {
		a.errorCount++
	}
}

// SkipLine records a line that could not be read or parsed. Filtered entries are not skips.
func (a *Aggregator) SkipLine() {
	a.skippedLines++
}

func (a *Aggregator) TotalRequests() int64 {
	return a.totalRequests
}

func (a *Aggregator) SkippedLines() int64 {
	return a.skippedLines
}

// increment bumps m[key] and reports whether the key is new.
func increment(m map[string]int64, key string, kind string) bool {
	count, exists := m[key]
	m[key] = count + 1
	if !exists {
		metricDistinctKeysCreatedTotal.WithLabelValues(kind).Inc()
	}
	return !exists
}
