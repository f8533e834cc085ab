package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/motorline/dealer-backend/internal/model"
)

// PaymentRepo provides CRUD for payment records. The created_at and
// updated_at columns are maintained by the database, so Create and
// Update read the row back to return fully populated timestamps.
type PaymentRepo struct {
	db *sql.DB
}

func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

const paymentColumns = `id, payment_date, amount, created_at, updated_at`

func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (payment_date, amount) VALUES (?, ?)`,
		p.PaymentDate, p.Amount)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	// Read back DB-assigned timestamps so callers get a complete record.
	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *got
	return nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id uint64) (*model.Payment, error) {
	var p model.Payment
	err := r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id).
		Scan(&p.ID, &p.PaymentDate, &p.Amount, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) List(ctx context.Context) ([]*model.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.PaymentDate, &p.Amount, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PaymentRepo) Update(ctx context.Context, p *model.Payment) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE payments SET payment_date = ?, amount = ? WHERE id = ?`,
		p.PaymentDate, p.Amount, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *got
	return nil
}

func (r *PaymentRepo) Delete(ctx context.Context, id uint64) (*model.Payment, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return p, nil
}
