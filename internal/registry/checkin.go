package registry

import (
	"fmt"
	"time"

	"ms-attendance/internal/models"
)

// CheckInEngine applies the check-in state machine to a single record. The
// transitions are pure in-memory mutations; persisting the result is the
// caller's responsibility.
type CheckInEngine struct {
	now func() time.Time
}

func NewCheckInEngine() *CheckInEngine {
	return &CheckInEngine{now: time.Now}
}

// CheckIn marks the record as admitted and stamps the time. A second call on
// the same record reports ErrAlreadyInState and leaves the first timestamp
// untouched.
func (e *CheckInEngine) CheckIn(record *models.AttendanceRecord) error {
	if record.CheckedIn {
		return fmt.Errorf("%s: %w", record.ID, ErrAlreadyInState)
	}
	checkInTime := e.now().UTC()
	record.CheckedIn = true
	record.CheckInTime = &checkInTime
	return nil
}

// UndoCheckIn reverses a mistaken check-in. Walk-ins are never reverted:
// they exist only because they were admitted, so undo on one is a no-op
// reported as ErrAlreadyInState.
func (e *CheckInEngine) UndoCheckIn(record *models.AttendanceRecord) error {
	if record.Category != models.CategoryPreRegistered {
		return fmt.Errorf("%s is a walk-in: %w", record.ID, ErrAlreadyInState)
	}
	record.CheckedIn = false
	record.CheckInTime = nil
	return nil
}
