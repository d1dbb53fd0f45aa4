package aggregators

import (
	"maps"
	"sort"

	"log-stats/internal/models"
)

const percentage = 100

type StatsReporter interface {
	// Finalize turns the aggregator's running state into a Report holding at most topN IPs.
	// The report shares no memory with the aggregator.
	Finalize(aggregator *Aggregator, topN int) *models.Report
}

type statsReporter struct{}

func NewStatsReporter() StatsReporter {
	return &statsReporter{}
}

func (r *statsReporter) Finalize(aggregator *Aggregator, topN int) *models.Report {
	report := models.NewEmptyReport()
	report.TotalRequests = aggregator.totalRequests
	report.TotalBytes = aggregator.totalBytes
	report.SkippedLines = aggregator.skippedLines
	maps.Copy(report.RequestsByStatus, aggregator.byStatus)
	maps.Copy(report.RequestsByHour, aggregator.byHour)
	report.TopIPs = topIPs(aggregator, topN)

	if aggregator.totalRequests > 0 {
		total := float64(aggregator.totalRequests)
		report.ErrorRate = float64(aggregator.errorCount) / total * percentage
		report.AvgResponseSize = float64(aggregator.totalBytes) / total
	}

	return report
}

// topIPs ranks IPs by count, descending. Equal counts keep first-seen order, so the same input
// always yields the same ranking.
func topIPs(aggregator *Aggregator, topN int) []models.IPCount {
	ranked := make([]models.IPCount, 0, len(aggregator.ipOrder))
	for _, ip := range aggregator.ipOrder {
		ranked = append(ranked, models.IPCount{IP: ip, Count: aggregator.ipCounts[ip]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if topN < 0 {
		topN = 0
	}
	if len(ranked) > topN {
		ranked = ranked[:topN:topN]
	}
	return ranked
}
