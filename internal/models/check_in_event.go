package models

import "time"

// Check-in stream event kinds.
const (
	EventKindCheckedIn     = "attendee.checked_in"
	EventKindCheckInUndone = "attendee.checkin_undone"
	EventKindWalkInAdded   = "walkin.added"
	EventKindWalkInRemoved = "walkin.removed"
)

// CheckInEvent is the envelope published to the check-in topic after a
// successful registry mutation.
type CheckInEvent struct {
	EventID    string           `json:"event_id"`
	Kind       string           `json:"kind"`
	Record     AttendanceRecord `json:"record"`
	OccurredAt time.Time        `json:"occurred_at"`
}
