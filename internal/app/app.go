package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"log-stats/internal/aggregators"
	"log-stats/internal/filters"
	internalhttp "log-stats/internal/http"
	"log-stats/internal/ingestors"
	"log-stats/internal/models"
	"log-stats/internal/pipelines"
	"log-stats/internal/renderers"
	"log-stats/internal/shared/configs"
	"log-stats/internal/shared/filestorages"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/shared/svcerrors"
	"log-stats/internal/shared/ulid"
	"log-stats/internal/sources"
	"log-stats/internal/stores"
)

const appName = "log-stats"

// RunOptions describes one pipeline run as requested on the command line.
type RunOptions struct {
	Source  string // file path, or "-" for stdin
	Filters filters.FilterOptions
	Save    bool
}

// RunResult is a finished run. Report is immutable from here on.
type RunResult struct {
	RunID  string
	Source string
	Report *models.Report
	Saved  bool
}

// App holds all application dependencies.
type App struct {
	config      *configs.Config
	appLogger   loggers.Logger
	pipeline    pipelines.Pipeline
	reportStore stores.ReportStore
	newSource   func(path string) sources.LogSource
	server      *http.Server
}

// New creates an App whose logs go to logOutput. Stdout is left to the report.
func New(config *configs.Config, logOutput io.Writer) (*App, error) {
	appLogger, err := loggers.NewWithWriter(config.Log.Level, logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	fileStorage, err := filestorages.NewFileStorage(config.Storage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	reportStore := stores.NewReportStore(fileStorage)

	pipeline := pipelines.NewPipeline(ingestors.NewCombinedLogParser(), aggregators.NewStatsReporter())

	return &App{
		config:      config,
		appLogger:   appLogger,
		pipeline:    pipeline,
		reportStore: reportStore,
		newSource:   sources.New,
	}, nil
}

// Run resolves the filters, opens the source and runs the pipeline over it once. Filter and source
// errors are returned before any line is read.
func (app *App) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	filterConfig, err := filters.NewFilterConfig(opts.Filters)
	if err != nil {
		return nil, err
	}

	source := app.newSource(opts.Source)
	runID := ulid.NewULID()
	runLogger := app.appLogger.With().
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldSource, source.Name()).
		Str(loggers.FieldComponent, "pipeline").
		Logger()
	ctx = runLogger.WithContext(ctx)

	reader, err := source.Open(ctx)
	if err != nil {
		runLogger.Error().Err(err).Str(loggers.FieldErrorCode, svcerrors.CodeOf(err)).Msg("failed to open source")
		return nil, err
	}
	defer reader.Close()

	report, err := app.pipeline.Run(ctx, reader, filterConfig)
	if err != nil {
		runLogger.Error().Err(err).Str(loggers.FieldErrorCode, svcerrors.CodeOf(err)).Msg("pipeline run failed")
		return nil, err
	}

	result := &RunResult{RunID: runID, Source: source.Name(), Report: report}
	if opts.Save {
		record := &models.ReportRecord{
			RunID:     runID,
			Source:    source.Name(),
			CreatedAt: time.Now().UTC(),
			Report:    report,
		}
		if err := app.reportStore.Save(ctx, record); err != nil {
			runLogger.Error().Err(err).Str(loggers.FieldErrorCode, svcerrors.CodeOf(err)).Msg("failed to save report")
			return nil, err
		}
		result.Saved = true
		runLogger.Info().Msg("report saved")
	}

	return result, nil
}

// Render writes the report in the given format, or the configured default when format is empty.
func (app *App) Render(w io.Writer, report *models.Report, format string) error {
	if format == "" {
		format = app.config.Report.Format
	}
	renderer, err := renderers.New(format)
	if err != nil {
		return err
	}
	return renderer.Render(w, report)
}

// ListReports returns the ids of the archived reports, oldest first.
func (app *App) ListReports(ctx context.Context) ([]string, error) {
	return app.reportStore.List(ctx)
}

// GetReport reads an archived report.
func (app *App) GetReport(ctx context.Context, runID string) (*models.ReportRecord, error) {
	return app.reportStore.Get(ctx, runID)
}

// Handler returns the read-only HTTP handler that serves result.
func (app *App) Handler(result *RunResult) http.Handler {
	httpLogger := app.appLogger.With().
		Str(loggers.FieldComponent, "http").
		Str(loggers.FieldRunID, result.RunID).
		Logger()
	return internalhttp.NewRouter(result.Report, app.reportStore, httpLogger)
}

// Serve serves result over HTTP until ctx is cancelled, then shuts the server down gracefully.
func (app *App) Serve(ctx context.Context, result *RunResult) error {
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.Handler(result),
		ReadHeaderTimeout: time.Duration(app.config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(app.config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(app.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(app.config.Server.IdleTimeout) * time.Second,
	}

	app.appLogger.Info().
		Msgf("Serving report %s on port %d (log_level=%s, storage_root_dir=%s)",
			result.RunID,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Storage.RootDir)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}

// Shutdown gracefully stops the HTTP server started by Serve.
func (app *App) Shutdown(ctx context.Context) error {
	if app.server == nil {
		return nil
	}
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
