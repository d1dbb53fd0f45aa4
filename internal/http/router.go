package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"log-stats/internal/models"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/shared/metrics"
	"log-stats/internal/stores"
)

// NewRouter serves the report of the current run, the archived reports and the metrics. Every
// route is read-only.
func NewRouter(report *models.Report, reportStore stores.ReportStore, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Get("/report", errorHandlingAdapter(NewGetReportHandler(report)))
	router.Get("/report/status/{"+paramStatusCode+"}", errorHandlingAdapter(NewGetStatusCountHandler(report)))
	router.Get("/reports", errorHandlingAdapter(NewListReportsHandler(reportStore)))
	router.Get("/reports/{"+paramRunID+"}", errorHandlingAdapter(NewGetArchivedReportHandler(reportStore)))
	router.Get("/metrics", metrics.Handler().ServeHTTP)

	return router
}
