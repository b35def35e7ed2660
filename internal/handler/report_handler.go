// internal/handler/report_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/unclebandit/crmdesk-backend/internal/service"
)

// ReportHandler serves the reporting endpoints.
type ReportHandler struct {
	CRMService *service.CRMService
}

func NewReportHandler(svc *service.CRMService) *ReportHandler {
	return &ReportHandler{CRMService: svc}
}

func (h *ReportHandler) CommunicationStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.CRMService.CommunicationStats()
	if err != nil {
		http.Error(w, "failed to compute communication stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *ReportHandler) TaskStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.CRMService.TaskCompletionStats()
	if err != nil {
		http.Error(w, "failed to compute task stats: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// CommunicationFrequencyHandler returns per-type counts bucketed by
// ?period=daily|weekly|monthly (default weekly).
func (h *ReportHandler) CommunicationFrequencyHandler(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = service.PeriodWeekly
	}

	buckets, err := h.CRMService.CommunicationFrequency(period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"period": period,
		"data":   buckets,
	})
}
