package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"formlab/internal/service"
)

// ReportHandler handles read-side scoring and report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// GetReport handles GET /api/forms/{formId}/report
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	report, err := h.reportSvc.GetReport(r.Context(), formID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ScoreResponse handles GET /api/forms/{formId}/responses/{responseId}/score
func (h *ReportHandler) ScoreResponse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	score, err := h.reportSvc.ScoreResponse(r.Context(), vars["formId"], vars["responseId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, score)
}
