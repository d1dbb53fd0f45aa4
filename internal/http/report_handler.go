package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"log-stats/internal/models"
)

const paramStatusCode = "code"

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type getReportHandler struct {
	report *models.Report
}

// NewGetReportHandler serves the report of the current run in the canonical schema.
func NewGetReportHandler(report *models.Report) AppHttpHandler {
	return &getReportHandler{report: report}
}

// Handle processes GET /report requests.
func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, h.report)
	return nil
}

type getStatusCountHandler struct {
	report *models.Report
}

func NewGetStatusCountHandler(report *models.Report) AppHttpHandler {
	return &getStatusCountHandler{report: report}
}

// Handle processes GET /report/status/{code} requests. Leading zeros are accepted, so /status/0404
// reads the "404" bucket.
func (h *getStatusCountHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	raw := chi.URLParam(r, paramStatusCode)
	code, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return errInvalidStatusCode(raw, err)
	}

	status := strconv.FormatUint(code, 10)
	count, ok := h.report.RequestsByStatus[status]
	if !ok {
		return errStatusNotReported(status)
	}

	writeJSON(w, http.StatusOK, StatusCountResponse{Status: status, Count: count})
	return nil
}
