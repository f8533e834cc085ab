package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/motorline/dealer-backend/internal/model"
)

// ImageRepo provides CRUD for car image links.
type ImageRepo struct {
	db *sql.DB
}

func NewImageRepo(db *sql.DB) *ImageRepo { return &ImageRepo{db: db} }

func (r *ImageRepo) Create(ctx context.Context, img *model.Image) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO images (link_url, car_id) VALUES (?, ?)`,
		img.LinkURL, img.CarID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	img.ID = uint64(id)
	return nil
}

func (r *ImageRepo) GetByID(ctx context.Context, id uint64) (*model.Image, error) {
	var img model.Image
	err := r.db.QueryRowContext(ctx,
		`SELECT id, link_url, car_id FROM images WHERE id = ?`, id).
		Scan(&img.ID, &img.LinkURL, &img.CarID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepo) List(ctx context.Context) ([]*model.Image, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, link_url, car_id FROM images ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Image
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.LinkURL, &img.CarID); err != nil {
			return nil, err
		}
		out = append(out, &img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ImageRepo) Update(ctx context.Context, img *model.Image) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE images SET link_url = ?, car_id = ? WHERE id = ?`,
		img.LinkURL, img.CarID, img.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ImageRepo) Delete(ctx context.Context, id uint64) (*model.Image, error) {
	img, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return img, nil
}
