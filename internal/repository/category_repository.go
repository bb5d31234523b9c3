package repository

import (
	"context"
	"database/sql"

	"github.com/soyummy/cookbook-api/internal/model"
)

// CategoryRepo reads the category reference data used to group the catalog.
type CategoryRepo struct{ DB *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{DB: db} }

// ListAll returns every catalog category.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, title, thumb, description FROM categories ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Category{}
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Title, &cat.Thumb, &cat.Description); err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}
