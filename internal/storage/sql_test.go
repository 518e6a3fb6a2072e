package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-attendance/internal/storage"
)

func setupSQLiteStore(t *testing.T) *storage.SQLStore {
	t.Helper()
	store, err := storage.OpenSQLite(":memory:", "attendance_data")
	if err != nil {
		t.Fatalf("Failed to open in-memory SQLite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLStoreEmptySlot(t *testing.T) {
	store := setupSQLiteStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrSlotEmpty)
}

func TestSQLStoreRoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()

	payload := []byte(`{"config":{"eventName":"The Sound Nexus"},"attendees":[]}`)
	require.NoError(t, store.Save(ctx, payload))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)
}

func TestSQLStoreUpsertOverwrites(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []byte("v1")))
	require.NoError(t, store.Save(ctx, []byte("v2")))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), loaded)
}

func TestSQLStoreKeysAreIndependent(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []byte("main")))

	other := &storage.SQLStore{Bun: store.Bun, Key: "other_slot"}
	_, err := other.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrSlotEmpty)

	require.NoError(t, other.Save(ctx, []byte("second")))

	mainPayload, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("main"), mainPayload)
}
