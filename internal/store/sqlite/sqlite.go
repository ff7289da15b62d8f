package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/MrSnakeDoc/curator/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS slots (
	profile    TEXT    NOT NULL,
	slot       TEXT    NOT NULL,
	value      TEXT    NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (profile, slot)
);`

const upsert = `
INSERT INTO slots (profile, slot, value, updated_at) VALUES (?, ?, ?, ?)
ON CONFLICT (profile, slot) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// Store is a store.Backend keeping one profile's slots in a SQLite file.
type Store struct {
	db      *sql.DB
	profile string
	now     func() time.Time
}

// Open opens (or creates) the database at path and prepares the schema.
func Open(ctx context.Context, path, profile string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}
	// One writer at a time avoids SQLITE_BUSY under the HTTP server.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, profile: profile, now: time.Now}, nil
}

// Get retrieves a slot value.
func (s *Store) Get(ctx context.Context, slot store.Slot) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM slots WHERE profile = ? AND slot = ?",
		s.profile, string(slot),
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get slot %s: %w", slot, err)
	}
	return value, true, nil
}

// SetMany upserts several slots. Each statement commits on its own.
func (s *Store) SetMany(ctx context.Context, values map[store.Slot]string) error {
	ts := s.now().UnixMilli()
	for slot, value := range values {
		if _, err := s.db.ExecContext(ctx, upsert, s.profile, string(slot), value, ts); err != nil {
			return fmt.Errorf("failed to save slot %s: %w", slot, err)
		}
	}
	return nil
}

// Delete removes slots.
func (s *Store) Delete(ctx context.Context, slots ...store.Slot) error {
	if len(slots) == 0 {
		return nil
	}
	args := make([]any, 0, len(slots)+1)
	args = append(args, s.profile)
	for _, slot := range slots {
		args = append(args, string(slot))
	}
	query := "DELETE FROM slots WHERE profile = ? AND slot IN (?" + strings.Repeat(", ?", len(slots)-1) + ")"
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete slots: %w", err)
	}
	return nil
}

// UpdatedAt reports when a slot was last written.
func (s *Store) UpdatedAt(ctx context.Context, slot store.Slot) (time.Time, bool, error) {
	var ms int64
	err := s.db.QueryRowContext(ctx,
		"SELECT updated_at FROM slots WHERE profile = ? AND slot = ?",
		s.profile, string(slot),
	).Scan(&ms)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to read slot %s: %w", slot, err)
	}
	return time.UnixMilli(ms), true, nil
}

// Ping checks the database handle.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
