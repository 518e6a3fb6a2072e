package registry

import "errors"

// Typed outcomes for registry operations. Callers branch with errors.Is; the
// HTTP layer maps them to status codes.
var (
	// ErrNotFound - no record matched the given ticket id.
	ErrNotFound = errors.New("attendee not found")

	// ErrAlreadyInState - the transition would be a no-op (double check-in,
	// undo on a walk-in).
	ErrAlreadyInState = errors.New("record already in requested state")

	// ErrValidation - rejected input (empty name, out-of-range quantity,
	// malformed config field). The in-memory state is untouched.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence - the storage slot write failed after the in-memory
	// mutation was applied. State changed, durability uncertain; callers
	// should retry Save.
	ErrPersistence = errors.New("persistence failed")
)
