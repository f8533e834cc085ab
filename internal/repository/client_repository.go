package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/motorline/dealer-backend/internal/model"
)

// ClientRepo encapsulates all database queries related to clients.
// Besides CRUD it provides the name lookup backing the uniqueness
// check and the sales-person probe that blocks user deletion.
type ClientRepo struct {
	db *sql.DB
}

// NewClientRepo constructs a ClientRepo with the provided DB handle.
func NewClientRepo(db *sql.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

const clientColumns = `id, name, email, contact_info, address, sales_person, photo_url, active`

// Create inserts a new client and populates its ID on success.
func (r *ClientRepo) Create(ctx context.Context, c *model.Client) error {
	const q = `INSERT INTO clients (name, email, contact_info, address, sales_person, photo_url, active)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		c.Name, c.Email, c.ContactInfo, c.Address, c.SalesPerson, c.PhotoURL, c.Active)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// GetByID fetches a client by id, returning ErrNotFound on a miss.
func (r *ClientRepo) GetByID(ctx context.Context, id uint64) (*model.Client, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
}

// FindByName looks up a client by its natural key. Names are compared
// after trimming, matching how they are stored.
func (r *ClientRepo) FindByName(ctx context.Context, name string) (*model.Client, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE name = ? LIMIT 1`,
		strings.TrimSpace(name)))
}

// ExistsBySalesPerson reports whether any client references the given
// user as its sales person. Used by the reference check before a user
// can be deleted.
func (r *ClientRepo) ExistsBySalesPerson(ctx context.Context, userID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM clients WHERE sales_person = ? LIMIT 1`, userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all clients ordered by id.
func (r *ClientRepo) List(ctx context.Context) ([]*model.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ContactInfo,
			&c.Address, &c.SalesPerson, &c.PhotoURL, &c.Active); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every mutable field of the client.
func (r *ClientRepo) Update(ctx context.Context, c *model.Client) error {
	const q = `UPDATE clients
	           SET name = ?, email = ?, contact_info = ?, address = ?, sales_person = ?, photo_url = ?, active = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		c.Name, c.Email, c.ContactInfo, c.Address, c.SalesPerson, c.PhotoURL, c.Active, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a client and returns the deleted record.
func (r *ClientRepo) Delete(ctx context.Context, id uint64) (*model.Client, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	c, err := r.scanOne(tx.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ClientRepo) scanOne(row *sql.Row) (*model.Client, error) {
	var c model.Client
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.ContactInfo,
		&c.Address, &c.SalesPerson, &c.PhotoURL, &c.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
