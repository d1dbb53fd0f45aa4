package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"log-stats/internal/stores"
)

const paramRunID = "runID"

type ListReportsResponse struct {
	RunIDs []string `json:"run_ids"`
}

type listReportsHandler struct {
	reportStore stores.ReportStore
}

func NewListReportsHandler(reportStore stores.ReportStore) AppHttpHandler {
	return &listReportsHandler{reportStore: reportStore}
}

// Handle processes GET /reports requests.
func (h *listReportsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	runIDs, err := h.reportStore.List(r.Context())
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, ListReportsResponse{RunIDs: runIDs})
	return nil
}

type getArchivedReportHandler struct {
	reportStore stores.ReportStore
}

func NewGetArchivedReportHandler(reportStore stores.ReportStore) AppHttpHandler {
	return &getArchivedReportHandler{reportStore: reportStore}
}

// Handle processes GET /reports/{runID} requests.
func (h *getArchivedReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	record, err := h.reportStore.Get(r.Context(), chi.URLParam(r, paramRunID))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, record)
	return nil
}
