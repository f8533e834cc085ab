package repository

import (
	"context"
	"database/sql"
)

// SequenceRepo hands out values from named durable counters stored in
// the `sequences` table. Counters are seeded once at bootstrap; after
// that, every allocation is a single atomic UPDATE so two concurrent
// callers can never observe the same value. Allocated values are never
// handed back: a caller whose own insert later fails simply leaves a
// gap in the numbering.
type SequenceRepo struct {
	db *sql.DB
}

// NewSequenceRepo returns a SequenceRepo bound to the provided database.
func NewSequenceRepo(db *sql.DB) *SequenceRepo { return &SequenceRepo{db: db} }

// Next advances the named counter by one and returns the new value.
//
// The increment itself is one UPDATE statement; MySQL's row lock makes
// it indivisible, and LAST_INSERT_ID(expr) records the freshly written
// value on the connection so it can be read back without racing other
// allocators. Both statements must run on the same connection, which
// is why they are wrapped in a transaction: database/sql would
// otherwise be free to run the SELECT on a different pooled connection.
func (r *SequenceRepo) Next(ctx context.Context, name string) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE sequences SET value = LAST_INSERT_ID(value + 1) WHERE name = ?`, name)
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, ErrUnknownSequence
	}

	var v uint64
	if err := tx.QueryRowContext(ctx, `SELECT LAST_INSERT_ID()`).Scan(&v); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return v, nil
}

// Current reads the counter's present value without advancing it. It is
// intended for diagnostics only; callers must never derive the next
// number from it.
func (r *SequenceRepo) Current(ctx context.Context, name string) (uint64, error) {
	var v uint64
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM sequences WHERE name = ?`, name).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, ErrUnknownSequence
	}
	if err != nil {
		return 0, err
	}
	return v, nil
}
