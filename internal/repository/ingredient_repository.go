package repository

import (
	"context"
	"database/sql"

	"github.com/soyummy/cookbook-api/internal/model"
)

// IngredientRepo reads the ingredient reference data. The table is seeded out
// of band and never written through this API.
type IngredientRepo struct{ DB *sql.DB }

func NewIngredientRepo(db *sql.DB) *IngredientRepo { return &IngredientRepo{DB: db} }

// ListAll returns every reference ingredient.
func (r *IngredientRepo) ListAll(ctx context.Context) ([]model.Ingredient, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, title, description, thumb FROM ingredients ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Ingredient{}
	for rows.Next() {
		var ing model.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Title, &ing.Description, &ing.Thumb); err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, rows.Err()
}
