package api

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"ms-attendance/internal/importer"
	"ms-attendance/internal/registry"
	"ms-attendance/internal/utils"
)

const maxImportBytes = 10 << 20 // 10MB

// ImportAttendees ingests a CSV or JSON payload, either as a multipart file
// upload or as a raw body with ?format=csv|json. The extension/MIME type is
// the only format discriminator; content is never sniffed.
func (h *Handler) ImportAttendees(w http.ResponseWriter, r *http.Request) {
	payload, format, err := readImportPayload(r)
	if err != nil {
		http.Error(w, "Invalid import upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	candidates, err := importer.Parse(payload, format)
	if err != nil {
		h.respondError(w, "Import parse failed", err)
		return
	}

	result, err := h.Registry.ImportAttendees(r.Context(), candidates)
	if err != nil && !errors.Is(err, registry.ErrPersistence) {
		h.respondError(w, "Import failed", err)
		return
	}
	h.respondMutation(w, "Import complete", result, err)
}

func readImportPayload(r *http.Request) ([]byte, string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", err
		}
		defer file.Close()

		payload, err := io.ReadAll(io.LimitReader(file, maxImportBytes))
		if err != nil {
			return nil, "", err
		}
		format := strings.TrimPrefix(filepath.Ext(header.Filename), ".")
		return payload, format, nil
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		return nil, "", err
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = contentType
	}
	return payload, format, nil
}

// ResetCheckIns reverts every pre-registered record to not-checked-in.
func (h *Handler) ResetCheckIns(w http.ResponseWriter, r *http.Request) {
	err := h.Registry.ResetCheckIns(r.Context())
	h.respondMutation(w, "Check-ins reset", nil, err)
}

// ClearAll wipes all event data and reseeds the sample set.
func (h *Handler) ClearAll(w http.ResponseWriter, r *http.Request) {
	err := h.Registry.ClearAll(r.Context())
	h.respondMutation(w, "All data cleared", nil, err)
}

// GetStats reports the live aggregate view.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, utils.SuccessResponse("Statistics", h.Registry.Stats()))
}
