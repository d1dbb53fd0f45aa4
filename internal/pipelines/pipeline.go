package pipelines

import (
	"context"
	"errors"
	"io"
	"time"

	"log-stats/internal/aggregators"
	"log-stats/internal/filters"
	"log-stats/internal/ingestors"
	"log-stats/internal/models"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/shared/metrics"
)

// maxConsecutiveReadErrors bounds how many read failures in a row are counted as skipped lines
// before the source is considered broken. Encoding errors do not count towards it.
const maxConsecutiveReadErrors = 3

// RunSummary describes how the lines of one run were dispatched. It is logged, not reported.
type RunSummary struct {
	LinesRead     int64
	LinesAccepted int64
	LinesFiltered int64
	LinesSkipped  int64
	Duration      time.Duration
}

// Pipeline consumes an access log once, in order, and produces its Report.
//
// Per line: parse -> (reject: skipped_lines++) | filter -> (reject: dropped) | aggregate.
// The report is only built after the source is exhausted. A run is single-threaded and keeps no
// state between calls, so the same input and config always give the same report.
//
//go:generate mockgen -source=pipeline.go -destination=./mocks/pipeline_mock.go -package=mocks
type Pipeline interface {
	Run(ctx context.Context, r io.Reader, cfg *models.FilterConfig) (*models.Report, error)
}

type pipeline struct {
	lineParser    ingestors.LineParser
	statsReporter aggregators.StatsReporter
}

func NewPipeline(lineParser ingestors.LineParser, statsReporter aggregators.StatsReporter) Pipeline {
	return &pipeline{
		lineParser:    lineParser,
		statsReporter: statsReporter,
	}
}

func (p *pipeline) Run(ctx context.Context, r io.Reader, cfg *models.FilterConfig) (*models.Report, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started pipeline run (from=%v, to=%v, status=%q, top_n=%d)", cfg.From, cfg.To, cfg.Status, cfg.TopN)

	start := time.Now()
	aggregator := aggregators.NewAggregator()
	summary := RunSummary{}

	reader := newLineReader(r)
	consecutiveReadErrors := 0
	for {
		line, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		summary.LinesRead++

		if err != nil {
			aggregator.SkipLine()
			metricLinesTotal.WithLabelValues(resultSkipped).Inc()
			if errors.Is(err, errInvalidEncoding) {
				logger.Debug().Int64(loggers.FieldLineNumber, summary.LinesRead).Err(err).Msg("line skipped")
				continue
			}
			consecutiveReadErrors++
			logger.Warn().Int64(loggers.FieldLineNumber, summary.LinesRead).Err(err).Msg("line read failed")
			if consecutiveReadErrors >= maxConsecutiveReadErrors {
				svcErr := errInternalSourceReadFailed(err)
				metricRunsTotal.WithLabelValues(svcErr.Code).Inc()
				return nil, svcErr
			}
			continue
		}
		consecutiveReadErrors = 0

		entry, err := p.lineParser.Parse(line)
		if err != nil {
			aggregator.SkipLine()
			metricLinesTotal.WithLabelValues(resultSkipped).Inc()
			logger.Debug().Int64(loggers.FieldLineNumber, summary.LinesRead).Err(err).Msg("line skipped")
			continue
		}

		if !filters.Accepts(entry, cfg) {
			summary.LinesFiltered++
			metricLinesTotal.WithLabelValues(resultFiltered).Inc()
			continue
		}

		aggregator.Update(entry)
		metricLinesTotal.WithLabelValues(resultAccepted).Inc()
	}

	report := p.statsReporter.Finalize(aggregator, cfg.TopN)

	summary.LinesAccepted = aggregator.TotalRequests()
	summary.LinesSkipped = aggregator.SkippedLines()
	summary.Duration = time.Since(start)

	metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricRunDuration.Observe(summary.Duration.Seconds())
	logger.Info().
		Int64(loggers.FieldLinesRead, summary.LinesRead).
		Int64(loggers.FieldLinesAccepted, summary.LinesAccepted).
		Int64(loggers.FieldLinesFiltered, summary.LinesFiltered).
		Int64(loggers.FieldLinesSkipped, summary.LinesSkipped).
		Int64(loggers.FieldDuration, summary.Duration.Milliseconds()).
		Msg("pipeline run completed")

	return report, nil
}
