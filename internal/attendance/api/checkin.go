package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"ms-attendance/internal/registry"
	"ms-attendance/internal/utils"
)

type checkInRequest struct {
	TicketID string `json:"ticket_id"`
}

type undoRequest struct {
	ID string `json:"id"`
}

// ResolveAttendee resolves a raw scanned/typed string without mutating state.
func (h *Handler) ResolveAttendee(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("ticket")
	record, err := h.Registry.FindAttendee(raw)
	if err != nil {
		h.respondError(w, "Ticket not found", err)
		return
	}
	h.respondJSON(w, http.StatusOK, utils.SuccessResponse("Attendee resolved", record))
}

// CheckIn resolves the scanned string and transitions the match to
// checked-in. Safe to retry: a duplicate scan reports 409 without touching
// the original timestamp.
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	match, err := h.Registry.FindAttendee(req.TicketID)
	if err != nil {
		h.respondError(w, "Ticket not found", err)
		return
	}

	record, err := h.Registry.CheckIn(r.Context(), match.ID)
	if err != nil && !errors.Is(err, registry.ErrPersistence) {
		h.respondError(w, "Check-in failed", err)
		return
	}

	h.publish(record.ID, func(p EventPublisher) error { return p.PublishCheckedIn(record) })
	h.respondMutation(w, "Checked in "+record.Name, record, err)
}

// UndoCheckIn reverses a mistaken check-in by exact record id.
func (h *Handler) UndoCheckIn(w http.ResponseWriter, r *http.Request) {
	var req undoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.Registry.UndoCheckIn(r.Context(), req.ID)
	if err != nil && !errors.Is(err, registry.ErrPersistence) {
		h.respondError(w, "Undo failed", err)
		return
	}

	h.publish(record.ID, func(p EventPublisher) error { return p.PublishCheckInUndone(record) })
	h.respondMutation(w, "Check-in reversed for "+record.Name, record, err)
}
