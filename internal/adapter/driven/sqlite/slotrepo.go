package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Aman-pandey-5909/shield-my-keys/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SlotStore = (*SlotRepo)(nil)

// SlotRepo is the SQLite implementation of the SlotStore port. Each slot is a
// single row; writes replace the whole value.
type SlotRepo struct {
	db *DB
}

// NewSlotRepo creates a new SlotRepo backed by the given DB.
func NewSlotRepo(db *DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// Get returns the value stored under name, or (nil, nil) if the slot is empty.
func (r *SlotRepo) Get(ctx context.Context, name string) ([]byte, error) {
	const query = `SELECT value FROM slots WHERE name = ?`

	var value []byte
	err := r.db.Reader.QueryRowContext(ctx, query, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get slot %q: %w", name, err)
	}
	return value, nil
}

// Set stores value under name, replacing any previous value.
func (r *SlotRepo) Set(ctx context.Context, name string, value []byte) error {
	const query = `
		INSERT INTO slots (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if value == nil {
		value = []byte{}
	}
	if _, err := r.db.Writer.ExecContext(ctx, query, name, value); err != nil {
		return fmt.Errorf("set slot %q: %w", name, err)
	}
	return nil
}

// Delete removes the slot. Deleting a missing slot is not an error.
func (r *SlotRepo) Delete(ctx context.Context, name string) error {
	const query = `DELETE FROM slots WHERE name = ?`
	if _, err := r.db.Writer.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("delete slot %q: %w", name, err)
	}
	return nil
}
