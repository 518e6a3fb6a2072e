package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"ms-attendance/internal/models"
	"ms-attendance/internal/registry"
	"ms-attendance/internal/utils"
)

// GetConfig returns the current event configuration.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, utils.SuccessResponse("Event config", h.Registry.GetConfig()))
}

// UpdateConfig merge-applies a partial config update and persists it.
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var update models.EventConfigUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	cfg, err := h.Registry.UpdateConfig(r.Context(), update)
	if err != nil && !errors.Is(err, registry.ErrPersistence) {
		h.respondError(w, "Config update rejected", err)
		return
	}
	h.respondMutation(w, "Config updated", cfg, err)
}

// ListAttendees returns a copy of the record set, optionally filtered by
// ?type=PRE-REG|WALK-IN.
func (h *Handler) ListAttendees(w http.ResponseWriter, r *http.Request) {
	attendees := h.Registry.GetAttendees()

	if filter := r.URL.Query().Get("type"); filter != "" {
		filtered := make([]models.AttendanceRecord, 0, len(attendees))
		for _, record := range attendees {
			if string(record.Category) == filter {
				filtered = append(filtered, record)
			}
		}
		attendees = filtered
	}

	h.respondJSON(w, http.StatusOK, utils.SuccessResponse("Attendees", attendees))
}

// PaymentQR serves the configured payment link as a PNG QR code.
// ?tier=growthx selects the alternate price tier link.
func (h *Handler) PaymentQR(w http.ResponseWriter, r *http.Request) {
	cfg := h.Registry.GetConfig()

	link := cfg.PaymentLink
	if r.URL.Query().Get("tier") == "growthx" {
		link = cfg.GrowthXPaymentLink
	}

	png, err := h.QR.PaymentPNG(link)
	if err != nil {
		http.Error(w, "QR generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.Logger.Error("API", "Failed to write QR response: "+err.Error())
	}
}
