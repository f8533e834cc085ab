package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/motorline/dealer-backend/internal/model"
)

// UserRepo encapsulates all database queries related to staff accounts.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, username, email, password_hash, roles, photo_url, active`

// Create inserts a new user and populates its ID on success.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	roles, err := encodeStrings(u.Roles)
	if err != nil {
		return err
	}
	const q = `INSERT INTO users (username, email, password_hash, roles, photo_url, active)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		u.Username, u.Email, u.PasswordHash, roles, u.PhotoURL, u.Active)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// GetByID fetches a user by id, returning ErrNotFound on a miss.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

// FindByUsername looks up a user by its natural key.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ? LIMIT 1`,
		strings.TrimSpace(username)))
}

// List returns all users ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]*model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.User
	for rows.Next() {
		var u model.User
		var roles string
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
			&roles, &u.PhotoURL, &u.Active); err != nil {
			return nil, err
		}
		rs, err := decodeStrings(roles)
		if err != nil {
			return nil, err
		}
		u.Roles = rs
		out = append(out, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every mutable field of the user, including the
// password hash: when the caller keeps the old password, the service
// carries the existing hash forward before calling Update.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	roles, err := encodeStrings(u.Roles)
	if err != nil {
		return err
	}
	const q = `UPDATE users
	           SET username = ?, email = ?, password_hash = ?, roles = ?, photo_url = ?, active = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		u.Username, u.Email, u.PasswordHash, roles, u.PhotoURL, u.Active, u.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user and returns the deleted record.
func (r *UserRepo) Delete(ctx context.Context, id uint64) (*model.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	u, err := r.scanOne(tx.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) scanOne(row *sql.Row) (*model.User, error) {
	var u model.User
	var roles string
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&roles, &u.PhotoURL, &u.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rs, err := decodeStrings(roles)
	if err != nil {
		return nil, err
	}
	u.Roles = rs
	return &u, nil
}
