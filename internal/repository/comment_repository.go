package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/motorline/dealer-backend/internal/model"
)

// CommentRepo provides CRUD for sale comments.
type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) *CommentRepo { return &CommentRepo{db: db} }

func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (related_sale, comment, created_by, created_at) VALUES (?, ?, ?, ?)`,
		c.RelatedSale, c.Comment, c.CreatedBy, c.CreatedAt)
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

func (r *CommentRepo) GetByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var c model.Comment
	err := r.db.QueryRowContext(ctx,
		`SELECT id, related_sale, comment, created_by, created_at FROM comments WHERE id = ?`, id).
		Scan(&c.ID, &c.RelatedSale, &c.Comment, &c.CreatedBy, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepo) List(ctx context.Context) ([]*model.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, related_sale, comment, created_by, created_at FROM comments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.RelatedSale, &c.Comment, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CommentRepo) Update(ctx context.Context, c *model.Comment) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE comments SET related_sale = ?, comment = ?, created_by = ?, created_at = ? WHERE id = ?`,
		c.RelatedSale, c.Comment, c.CreatedBy, c.CreatedAt, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommentRepo) Delete(ctx context.Context, id uint64) (*model.Comment, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return c, nil
}
