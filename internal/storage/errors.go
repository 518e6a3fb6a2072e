package storage

import "errors"

// ErrSlotEmpty reports an absent slot. The registry treats it as "first run",
// not as a failure.
var ErrSlotEmpty = errors.New("storage: slot is empty")
