package handlers

import (
	"net/http"

	"github.com/hostelhub/hostel-backend/internal/api/httpx"
	repo "github.com/hostelhub/hostel-backend/internal/repository"
	"github.com/hostelhub/hostel-backend/internal/services"
)

type DashboardHandler struct {
	dash *services.DashboardService
}

func NewDashboardHandler(dash *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dash: dash}
}

func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.dash.Metrics(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, m)
}

// AuditLogHandler exposes the audit trail read-only. There is no write
// endpoint: rows are produced by the recorder, never by clients.
type AuditLogHandler struct {
	logs repo.AuditLogs
}

func NewAuditLogHandler(logs repo.AuditLogs) *AuditLogHandler {
	return &AuditLogHandler{logs: logs}
}

func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := limitOffset(r)
	entries, err := h.logs.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, entries)
}
