package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/motorline/dealer-backend/internal/model"
)

// InventoryRepo encapsulates all database queries related to stock
// records. ExistsByCarID backs the reference check that stops a car
// from being deleted while stock still points at it.
type InventoryRepo struct {
	db *sql.DB
}

// NewInventoryRepo constructs an InventoryRepo with the provided DB handle.
func NewInventoryRepo(db *sql.DB) *InventoryRepo { return &InventoryRepo{db: db} }

// Create inserts a new inventory record and populates its ID on success.
func (r *InventoryRepo) Create(ctx context.Context, inv *model.Inventory) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO inventory (car_id, quantity, location) VALUES (?, ?, ?)`,
		inv.CarID, inv.Quantity, inv.Location)
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

// GetByID fetches an inventory record by id, returning ErrNotFound on a miss.
func (r *InventoryRepo) GetByID(ctx context.Context, id uint64) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.QueryRowContext(ctx,
		`SELECT id, car_id, quantity, location FROM inventory WHERE id = ?`, id).
		Scan(&inv.ID, &inv.CarID, &inv.Quantity, &inv.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ExistsByCarID reports whether any inventory record references the car.
func (r *InventoryRepo) ExistsByCarID(ctx context.Context, carID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM inventory WHERE car_id = ? LIMIT 1`, carID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all inventory records ordered by id.
func (r *InventoryRepo) List(ctx context.Context) ([]*model.Inventory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, car_id, quantity, location FROM inventory ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Inventory
	for rows.Next() {
		var inv model.Inventory
		if err := rows.Scan(&inv.ID, &inv.CarID, &inv.Quantity, &inv.Location); err != nil {
			return nil, err
		}
		out = append(out, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the mutable fields of an inventory record.
func (r *InventoryRepo) Update(ctx context.Context, inv *model.Inventory) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE inventory SET car_id = ?, quantity = ?, location = ? WHERE id = ?`,
		inv.CarID, inv.Quantity, inv.Location, inv.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an inventory record and returns the deleted record.
func (r *InventoryRepo) Delete(ctx context.Context, id uint64) (*model.Inventory, error) {
	inv, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return inv, nil
}
