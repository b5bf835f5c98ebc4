package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const kvFileName = "lifepm.sqlite"

// The gateway stores the full AppData blob as JSON under a single row of a
// key-value table, plus a second independent row for the active profile id.
// Keeping the pointer out of the main blob means profile switching does not
// rewrite all data.

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) kvPath() string {
	return filepath.Join(s.Dir, kvFileName)
}

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.kvPath())
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage. WAL enables one writer + many
	// readers; busy_timeout avoids "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s Store) getKey(key string) (string, bool) {
	ctx := context.Background()
	db, err := s.openSQLite(ctx)
	if err != nil {
		return "", false
	}
	defer db.Close()

	var v string
	if err := db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&v); err != nil {
		return "", false
	}
	return v, true
}

func (s Store) setKey(key, value string) bool {
	ctx := context.Background()
	db, err := s.openSQLite(ctx)
	if err != nil {
		return false
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO kv(k, v) VALUES(?, ?)`, key, value)
	return err == nil
}

func (s Store) deleteKey(key string) bool {
	ctx := context.Background()
	db, err := s.openSQLite(ctx)
	if err != nil {
		return false
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `DELETE FROM kv WHERE k = ?`, key)
	return err == nil
}

// IsAvailable probes whether the backing store can be written to.
func (s Store) IsAvailable() bool {
	const probe = "__storage_test__"
	if !s.setKey(probe, probe) {
		return false
	}
	return s.deleteKey(probe)
}

// Load reads the persisted AppData blob. Missing, unavailable, or
// malformed data all degrade to nil so the caller can seed defaults.
func (s Store) Load() *DB {
	raw, ok := s.getKey(dataKey)
	if !ok || raw == "" {
		return nil
	}
	var db DB
	if err := json.Unmarshal([]byte(raw), &db); err != nil {
		// Malformed persisted data is treated like no data at all.
		return nil
	}
	return &db
}

// Save serializes the AppData blob and writes it under the fixed key.
// Returns false on any failure.
func (s Store) Save(db *DB) bool {
	if db == nil {
		return false
	}
	b, err := json.Marshal(db)
	if err != nil {
		return false
	}
	return s.setKey(dataKey, string(b))
}

// ActiveProfileID reads the independently stored active-profile pointer.
func (s Store) ActiveProfileID() (string, bool) {
	return s.getKey(currentProfileKey)
}

func (s Store) SetActiveProfileID(id string) bool {
	return s.setKey(currentProfileKey, id)
}
