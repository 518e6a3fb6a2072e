package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ms-attendance/internal/registry"
)

// AddWalkIn records an on-site purchase. The record is created already
// checked in.
func (h *Handler) AddWalkIn(w http.ResponseWriter, r *http.Request) {
	var params registry.WalkInParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.Registry.AddWalkIn(r.Context(), params)
	if err != nil && !errors.Is(err, registry.ErrPersistence) {
		h.respondError(w, "Walk-in rejected", err)
		return
	}

	h.publish(record.ID, func(p EventPublisher) error { return p.PublishWalkInAdded(record) })
	h.respondMutation(w, "Walk-in added", record, err)
}

// RemoveWalkIn deletes a walk-in by id. Pre-registered records are never
// removed through this endpoint, even on id collision.
func (h *Handler) RemoveWalkIn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.Registry.RemoveWalkIn(r.Context(), id)
	if err != nil && !errors.Is(err, registry.ErrPersistence) {
		h.respondError(w, "Walk-in not removed", err)
		return
	}

	h.publish(record.ID, func(p EventPublisher) error { return p.PublishWalkInRemoved(record) })
	h.respondMutation(w, "Walk-in removed", record, err)
}
