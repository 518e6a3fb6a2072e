package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ms-attendance/internal/importer"
	"ms-attendance/internal/logger"
	"ms-attendance/internal/models"
	"ms-attendance/internal/qr"
	"ms-attendance/internal/registry"
	"ms-attendance/internal/utils"
)

// EventPublisher streams registry mutations to the check-in topic. Publish
// failures never fail the operation; they are logged and dropped.
type EventPublisher interface {
	PublishCheckedIn(record models.AttendanceRecord) error
	PublishCheckInUndone(record models.AttendanceRecord) error
	PublishWalkInAdded(record models.AttendanceRecord) error
	PublishWalkInRemoved(record models.AttendanceRecord) error
}

type Handler struct {
	Registry  *registry.Registry
	Publisher EventPublisher
	QR        *qr.Generator
	Logger    *logger.Logger
}

func NewHandler(reg *registry.Registry, publisher EventPublisher, log *logger.Logger) *Handler {
	return &Handler{
		Registry:  reg,
		Publisher: publisher,
		QR:        qr.NewGenerator(),
		Logger:    log,
	}
}

// RegisterRoutes mounts the attendance API under /api/attendance.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/attendance", func(r chi.Router) {
		r.Get("/stats", h.GetStats)
		r.Get("/config", h.GetConfig)
		r.Put("/config", h.UpdateConfig)
		r.Get("/attendees", h.ListAttendees)
		r.Get("/attendees/resolve", h.ResolveAttendee)
		r.Post("/checkin", h.CheckIn)
		r.Post("/checkin/undo", h.UndoCheckIn)
		r.Post("/walkins", h.AddWalkIn)
		r.Delete("/walkins/{id}", h.RemoveWalkIn)
		r.Post("/import", h.ImportAttendees)
		r.Post("/reset-checkins", h.ResetCheckIns)
		r.Post("/clear", h.ClearAll)
		r.Get("/export/backup", h.ExportBackup)
		r.Get("/export/checkins.csv", h.ExportCheckIns)
		r.Get("/export/walkins.csv", h.ExportWalkIns)
		r.Get("/export/summary", h.ExportSummary)
		r.Get("/payment-qr", h.PaymentQR)
	})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload utils.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error("API", "Failed to encode response: "+err.Error())
	}
}

// respondError maps the registry error taxonomy onto HTTP status codes.
func (h *Handler) respondError(w http.ResponseWriter, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, registry.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, registry.ErrAlreadyInState):
		status = http.StatusConflict
	case errors.Is(err, registry.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, importer.ErrParseFailed):
		status = http.StatusUnprocessableEntity
	}
	h.respondJSON(w, status, utils.ErrorResponse(message, err.Error()))
}

// respondMutation reports a mutation outcome. A persistence failure is a
// partial success: the state changed in memory, so the record is returned
// with a durability warning instead of an error status.
func (h *Handler) respondMutation(w http.ResponseWriter, message string, data interface{}, err error) {
	if err == nil {
		h.respondJSON(w, http.StatusOK, utils.SuccessResponse(message, data))
		return
	}
	if errors.Is(err, registry.ErrPersistence) {
		h.respondJSON(w, http.StatusOK, utils.PartialResponse(message+" (save failed, retry save)", data, err.Error()))
		return
	}
	h.respondError(w, message+" failed", err)
}

func (h *Handler) publish(recordID string, fn func(EventPublisher) error) {
	if h.Publisher == nil {
		return
	}
	if err := fn(h.Publisher); err != nil {
		h.Logger.Warn("KAFKA", "Failed to publish event for "+recordID+": "+err.Error())
	}
}
