package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/motorline/dealer-backend/internal/model"
)

// InvoiceRepo encapsulates all database queries related to invoices.
// Like SaleRepo, the sequence-assigned column (receive) is written at
// insert only and excluded from Update.
type InvoiceRepo struct {
	db *sql.DB
}

// NewInvoiceRepo constructs an InvoiceRepo with the provided DB handle.
func NewInvoiceRepo(db *sql.DB) *InvoiceRepo { return &InvoiceRepo{db: db} }

const invoiceColumns = `id, sales_person, due_date, total_amount, paid, receive`

// Create inserts a new invoice with its pre-allocated receive number
// and populates its ID on success.
func (r *InvoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	const q = `INSERT INTO invoices (sales_person, due_date, total_amount, paid, receive)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		inv.SalesPerson, inv.DueDate, inv.TotalAmount, inv.Paid, inv.Receive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	inv.ID = uint64(id)
	return nil
}

// GetByID fetches an invoice by id, returning ErrNotFound on a miss.
func (r *InvoiceRepo) GetByID(ctx context.Context, id uint64) (*model.Invoice, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id))
}

// List returns all invoices ordered by id.
func (r *InvoiceRepo) List(ctx context.Context) ([]*model.Invoice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Invoice
	for rows.Next() {
		var inv model.Invoice
		if err := rows.Scan(&inv.ID, &inv.SalesPerson, &inv.DueDate,
			&inv.TotalAmount, &inv.Paid, &inv.Receive); err != nil {
			return nil, err
		}
		out = append(out, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the mutable fields of an invoice. Receive is excluded.
func (r *InvoiceRepo) Update(ctx context.Context, inv *model.Invoice) error {
	const q = `UPDATE invoices
	           SET sales_person = ?, due_date = ?, total_amount = ?, paid = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		inv.SalesPerson, inv.DueDate, inv.TotalAmount, inv.Paid, inv.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an invoice and returns the deleted record.
func (r *InvoiceRepo) Delete(ctx context.Context, id uint64) (*model.Invoice, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	inv, err := r.scanOne(tx.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceRepo) scanOne(row *sql.Row) (*model.Invoice, error) {
	var inv model.Invoice
	err := row.Scan(&inv.ID, &inv.SalesPerson, &inv.DueDate,
		&inv.TotalAmount, &inv.Paid, &inv.Receive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
