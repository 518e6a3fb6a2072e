package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"
)

// AppState is the single-row KV table backing the SQL slots.
type AppState struct {
	bun.BaseModel `bun:"table:app_state"`

	Key       string    `bun:"key,pk"`
	Value     []byte    `bun:"value"`
	UpdatedAt time.Time `bun:"updated_at"`
}

// SQLStore persists the slot in one row of an app_state table via bun.
// The same code serves SQLite (local, offline-friendly) and Postgres.
type SQLStore struct {
	Bun *bun.DB
	Key string
}

// OpenSQLite opens (creating if needed) a SQLite-backed store at path.
// Use ":memory:" for tests.
func OpenSQLite(path, key string) (*SQLStore, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return newSQLStore(bun.NewDB(sqldb, sqlitedialect.New()), key)
}

// OpenPostgres opens a Postgres-backed store using the given DSN.
func OpenPostgres(dsn, key string) (*SQLStore, error) {
	sqldb, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return newSQLStore(bun.NewDB(sqldb, pgdialect.New()), key)
}

func newSQLStore(bunDB *bun.DB, key string) (*SQLStore, error) {
	store := &SQLStore{Bun: bunDB, Key: key}
	_, err := bunDB.NewCreateTable().
		Model((*AppState)(nil)).
		IfNotExists().
		Exec(context.Background())
	if err != nil {
		return nil, fmt.Errorf("ensure app_state table: %w", err)
	}
	return store, nil
}

func (s *SQLStore) Load(ctx context.Context) ([]byte, error) {
	var state AppState
	err := s.Bun.NewSelect().
		Model(&state).
		Where("key = ?", s.Key).
		Limit(1).
		Scan(ctx)
	if err == sql.ErrNoRows {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("load app_state %s: %w", s.Key, err)
	}
	return state.Value, nil
}

func (s *SQLStore) Save(ctx context.Context, payload []byte) error {
	state := AppState{
		Key:       s.Key,
		Value:     payload,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.Bun.NewInsert().
		Model(&state).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save app_state %s: %w", s.Key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.Bun.Close()
}
