package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/motorline/dealer-backend/internal/model"
)

// SaleRepo encapsulates all database queries related to sales. The
// ticket column is written exactly once, at insert; Update deliberately
// leaves it out of the SET list so an assigned number can never change.
type SaleRepo struct {
	db *sql.DB
}

// NewSaleRepo constructs a SaleRepo with the provided DB handle.
func NewSaleRepo(db *sql.DB) *SaleRepo { return &SaleRepo{db: db} }

const saleColumns = `id, buyer, sale_date, quantity, total_price, payment_method, sales_person, ticket`

// Create inserts a new sale with its pre-allocated ticket number and
// populates its ID on success.
func (r *SaleRepo) Create(ctx context.Context, s *model.Sale) error {
	const q = `INSERT INTO sales (buyer, sale_date, quantity, total_price, payment_method, sales_person, ticket)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		s.Buyer, s.SaleDate, s.Quantity, s.TotalPrice, s.PaymentMethod, s.SalesPerson, s.Ticket)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID fetches a sale by id, returning ErrNotFound on a miss.
func (r *SaleRepo) GetByID(ctx context.Context, id uint64) (*model.Sale, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id = ?`, id))
}

// ExistsByBuyer reports whether any sale references the given client as
// its buyer. Used by the reference check before a client can be deleted.
func (r *SaleRepo) ExistsByBuyer(ctx context.Context, clientID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM sales WHERE buyer = ? LIMIT 1`, clientID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all sales ordered by id.
func (r *SaleRepo) List(ctx context.Context) ([]*model.Sale, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+saleColumns+` FROM sales ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Sale
	for rows.Next() {
		var s model.Sale
		if err := rows.Scan(&s.ID, &s.Buyer, &s.SaleDate, &s.Quantity,
			&s.TotalPrice, &s.PaymentMethod, &s.SalesPerson, &s.Ticket); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the mutable fields of a sale. Ticket is excluded.
func (r *SaleRepo) Update(ctx context.Context, s *model.Sale) error {
	const q = `UPDATE sales
	           SET buyer = ?, sale_date = ?, quantity = ?, total_price = ?, payment_method = ?, sales_person = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		s.Buyer, s.SaleDate, s.Quantity, s.TotalPrice, s.PaymentMethod, s.SalesPerson, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a sale and returns the deleted record.
func (r *SaleRepo) Delete(ctx context.Context, id uint64) (*model.Sale, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	s, err := r.scanOne(tx.QueryRowContext(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SaleRepo) scanOne(row *sql.Row) (*model.Sale, error) {
	var s model.Sale
	err := row.Scan(&s.ID, &s.Buyer, &s.SaleDate, &s.Quantity,
		&s.TotalPrice, &s.PaymentMethod, &s.SalesPerson, &s.Ticket)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
