// This file defines repository methods for vehicle records. Cars carry
// a three-field natural key (make, model, year); the lookup used by the
// uniqueness check lives here next to the plain CRUD operations.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/motorline/dealer-backend/internal/model"
)

// CarRepo encapsulates all database queries related to cars. It depends
// on a sql.DB connection which should be configured elsewhere.
type CarRepo struct {
	db *sql.DB
}

// NewCarRepo constructs a CarRepo with the provided DB handle. This
// allows dependency injection of the database in tests and at startup.
func NewCarRepo(db *sql.DB) *CarRepo {
	return &CarRepo{db: db}
}

// Create inserts a new car. On success the car's ID field is populated
// with the auto-generated value.
func (r *CarRepo) Create(ctx context.Context, c *model.Car) error {
	photos, err := encodeStrings(c.Photos)
	if err != nil {
		return err
	}
	const q = `INSERT INTO cars (make, model, year, price, description, photos, active)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		c.Make, c.Model, c.Year, c.Price, c.Description, photos, c.Active)
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

// GetByID fetches a car by its ID. It returns ErrNotFound if no row
// is found.
func (r *CarRepo) GetByID(ctx context.Context, id uint64) (*model.Car, error) {
	const q = `SELECT id, make, model, year, price, description, photos, active
	           FROM cars WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// FindByMakeModelYear looks up the car matching the full natural key.
// ErrNotFound means no car carries that (make, model, year) triple.
func (r *CarRepo) FindByMakeModelYear(ctx context.Context, make, mdl string, year int) (*model.Car, error) {
	const q = `SELECT id, make, model, year, price, description, photos, active
	           FROM cars WHERE make = ? AND model = ? AND year = ? LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, make, mdl, year))
}

// List returns all cars ordered by id.
func (r *CarRepo) List(ctx context.Context) ([]*model.Car, error) {
	const q = `SELECT id, make, model, year, price, description, photos, active
	           FROM cars ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces every mutable field of the car in one statement.
// sql-level partial patches are not supported; callers always supply
// the complete record. ErrNotFound is returned when no row matched.
func (r *CarRepo) Update(ctx context.Context, c *model.Car) error {
	photos, err := encodeStrings(c.Photos)
	if err != nil {
		return err
	}
	const q = `UPDATE cars
	           SET make = ?, model = ?, year = ?, price = ?, description = ?, photos = ?, active = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		c.Make, c.Model, c.Year, c.Price, c.Description, photos, c.Active, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a car and returns the deleted record so callers can
// build a confirmation message. The read and the delete share one
// transaction to keep the returned snapshot consistent.
func (r *CarRepo) Delete(ctx context.Context, id uint64) (*model.Car, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	const q = `SELECT id, make, model, year, price, description, photos, active
	           FROM cars WHERE id = ?`
	c, err := r.scanOne(tx.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cars WHERE id = ?`, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return c, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *CarRepo) scanOne(row *sql.Row) (*model.Car, error) {
	c, err := scanCar(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func scanCar(s rowScanner) (*model.Car, error) {
	var c model.Car
	var photos string
	if err := s.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Price,
		&c.Description, &photos, &c.Active); err != nil {
		return nil, err
	}
	ps, err := decodeStrings(photos)
	if err != nil {
		return nil, err
	}
	c.Photos = ps
	return &c, nil
}
