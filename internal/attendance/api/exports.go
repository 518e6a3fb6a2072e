package api

import (
	"fmt"
	"net/http"
	"time"

	"ms-attendance/internal/export"
)

// ExportBackup serves the entire persisted structure as indented JSON.
func (h *Handler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	snapshot := h.Registry.Snapshot()

	payload, err := export.BuildBackup(snapshot)
	if err != nil {
		http.Error(w, "Backup export failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.serveDownload(w, payload, "application/json",
		export.FileName(snapshot.Config.EventName, "backup", "json", time.Now()))
}

// ExportCheckIns serves the pre-registered records as CSV.
func (h *Handler) ExportCheckIns(w http.ResponseWriter, r *http.Request) {
	cfg := h.Registry.GetConfig()
	payload := export.BuildCheckInsCSV(h.Registry.GetAttendees())
	h.serveDownload(w, payload, "text/csv; charset=utf-8",
		export.FileName(cfg.EventName, "checkins", "csv", time.Now()))
}

// ExportWalkIns serves the walk-in records as CSV.
func (h *Handler) ExportWalkIns(w http.ResponseWriter, r *http.Request) {
	cfg := h.Registry.GetConfig()
	payload := export.BuildWalkInsCSV(h.Registry.GetAttendees())
	h.serveDownload(w, payload, "text/csv; charset=utf-8",
		export.FileName(cfg.EventName, "walkins", "csv", time.Now()))
}

// ExportSummary serves the summary report.
func (h *Handler) ExportSummary(w http.ResponseWriter, r *http.Request) {
	cfg := h.Registry.GetConfig()

	payload, err := export.BuildSummary(cfg, h.Registry.Stats(), time.Now().UTC())
	if err != nil {
		http.Error(w, "Summary export failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.serveDownload(w, payload, "application/json",
		export.FileName(cfg.EventName, "summary", "json", time.Now()))
}

func (h *Handler) serveDownload(w http.ResponseWriter, payload []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		h.Logger.Error("API", "Failed to write export: "+err.Error())
	}
}
