package renderers

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"log-stats/internal/models"
)

type tableRenderer struct{}

// NewTableRenderer renders the report as a set of terminal tables.
func NewTableRenderer() Renderer {
	return &tableRenderer{}
}

func (r *tableRenderer) Render(w io.Writer, report *models.Report) error {
	sections := []string{
		renderSummary(report),
		renderCounts("Requests by status", "Status", report.RequestsByStatus, compareStatusKeys),
		renderCounts("Requests by hour", "Hour", report.RequestsByHour, strings.Compare),
		renderTopIPs(report.TopIPs),
	}

	if _, err := io.WriteString(w, strings.Join(sections, "\n\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write report table: %w", err)
	}
	return nil
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	return tbl
}

func renderSummary(report *models.Report) string {
	tbl := newTable()
	tbl.SetTitle("Summary")
	tbl.AppendRows([]table.Row{
		{"Total requests", humanize.Comma(report.TotalRequests)},
		{"Total bytes", fmt.Sprintf("%s (%d)", humanize.Bytes(report.TotalBytes), report.TotalBytes)},
		{"Skipped lines", humanize.Comma(report.SkippedLines)},
		{"Error rate", fmt.Sprintf("%.2f%%", report.ErrorRate)},
		{"Avg response size", fmt.Sprintf("%s (%.2f)", humanize.Bytes(uint64(report.AvgResponseSize)), report.AvgResponseSize)},
	})
	return tbl.Render()
}

func renderCounts(title, keyHeader string, counts map[string]int64, compare func(a, b string) int) string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, compare)

	tbl := newTable()
	tbl.SetTitle(title)
	tbl.AppendHeader(table.Row{keyHeader, "Requests"})
	for _, key := range keys {
		tbl.AppendRow(table.Row{key, humanize.Comma(counts[key])})
	}
	if len(keys) == 0 {
		tbl.AppendRow(table.Row{"-", "0"})
	}
	return tbl.Render()
}

func renderTopIPs(topIPs []models.IPCount) string {
	tbl := newTable()
	tbl.SetTitle("Top IPs")
	tbl.AppendHeader(table.Row{"#", "IP", "Requests"})
	for i, ipCount := range topIPs {
		tbl.AppendRow(table.Row{i + 1, ipCount.IP, humanize.Comma(ipCount.Count)})
	}
	if len(topIPs) == 0 {
		tbl.AppendRow(table.Row{"-", "-", "0"})
	}
	return tbl.Render()
}

// compareStatusKeys orders status keys numerically.
func compareStatusKeys(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return na - nb
}
