package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/soyummy/cookbook-api/internal/model"
)

// FavoriteRepo manages the many-to-many favorites relation between users and
// recipes. Membership lives in the recipe_favorites table whose composite
// primary key gives the relation set semantics.
type FavoriteRepo struct{ DB *sql.DB }

func NewFavoriteRepo(db *sql.DB) *FavoriteRepo { return &FavoriteRepo{DB: db} }

// Add inserts the (recipe, user) pair. Adding an already-present pair is a
// no-op success thanks to INSERT IGNORE over the composite key. A missing
// recipe fails the foreign key and surfaces as ErrNotFound.
func (r *FavoriteRepo) Add(ctx context.Context, recipeID, userID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT IGNORE INTO recipe_favorites (recipe_id, user_id) VALUES (?,?)",
		recipeID, userID)
	if err != nil {
		return err
	}
	// INSERT IGNORE swallows FK violations as warnings on some MySQL
	// configurations; verify the recipe exists when nothing was inserted.
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		err := r.DB.QueryRowContext(ctx,
			"SELECT 1 FROM recipes WHERE id=? LIMIT 1", recipeID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Remove deletes the (recipe, user) pair. Removing an absent pair is a no-op
// success.
func (r *FavoriteRepo) Remove(ctx context.Context, recipeID, userID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM recipe_favorites WHERE recipe_id=? AND user_id=?",
		recipeID, userID)
	return err
}

// ListForUser returns one page of the recipes the user favorited plus the
// total membership count. Count and page come from the same base filter so
// totalPages math stays consistent with the returned slice.
func (r *FavoriteRepo) ListForUser(ctx context.Context, userID uint64, limit, offset int) ([]model.Recipe, int64, error) {
	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM recipe_favorites WHERE user_id=?", userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT r.id,r.title,r.category,r.area,r.instructions,r.description,r.thumb,r.preview,r.time,r.youtube,r.tags,r.owner_id
		FROM recipes r
		JOIN recipe_favorites f ON f.recipe_id = r.id
		WHERE f.user_id=?
		ORDER BY r.id
		LIMIT ? OFFSET ?`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out, err := collectRecipes(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
