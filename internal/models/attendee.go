package models

import "time"

// Category tags how an attendee entered the event. The wire strings match
// the historical backup format so old exports re-import cleanly.
type Category string

const (
	CategoryPreRegistered Category = "PRE-REG"
	CategoryWalkIn        Category = "WALK-IN"
)

// AttendanceRecord is the single registry entity: one ticket holder (or
// walk-in purchaser) and their check-in state.
type AttendanceRecord struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	TicketType    string     `json:"ticketType"`
	Quantity      int        `json:"quantity"`
	AmountPaid    int        `json:"amountPaid"`
	Category      Category   `json:"type"`
	CheckedIn     bool       `json:"checkedIn"`
	CheckInTime   *time.Time `json:"checkInTime"`
	TransactionID string     `json:"transactionId,omitempty"`
}

// IsWalkIn reports whether the record was created at the door.
func (r *AttendanceRecord) IsWalkIn() bool {
	return r.Category == CategoryWalkIn
}

// Snapshot is the full persisted structure held by the storage slot.
type Snapshot struct {
	Config    EventConfig        `json:"config"`
	Attendees []AttendanceRecord `json:"attendees"`
}
