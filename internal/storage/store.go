package storage

import "context"

// Store is the opaque persistence slot: one key holding one byte payload.
// The registry never interprets Load/Save failures beyond "absent" vs
// "broken": a missing slot is signalled with ErrSlotEmpty, everything else
// is a backend error.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}
