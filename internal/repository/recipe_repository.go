package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/soyummy/cookbook-api/internal/model"
)

// RecipeRepo persists recipes and their ingredient lines.
type RecipeRepo struct{ DB *sql.DB }

func NewRecipeRepo(db *sql.DB) *RecipeRepo { return &RecipeRepo{DB: db} }

const recipeColumns = "id,title,category,area,instructions,description,thumb,preview,time,youtube,tags,owner_id"

func scanRecipe(sc interface{ Scan(...any) error }) (model.Recipe, error) {
	var rec model.Recipe
	err := sc.Scan(&rec.ID, &rec.Title, &rec.Category, &rec.Area, &rec.Instructions,
		&rec.Description, &rec.Thumb, &rec.Preview, &rec.Time, &rec.Youtube, &rec.Tags, &rec.OwnerID)
	return rec, err
}

func collectRecipes(rows *sql.Rows) ([]model.Recipe, error) {
	defer rows.Close()
	out := []model.Recipe{}
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetByID loads one recipe with its ingredient lines. Returns ErrNotFound
// when no such recipe exists; ownership is the caller's concern and is
// checked only after this existence check succeeded.
func (r *RecipeRepo) GetByID(ctx context.Context, id uint64) (*model.Recipe, error) {
	rec, err := scanRecipe(r.DB.QueryRowContext(ctx,
		"SELECT "+recipeColumns+" FROM recipes WHERE id=? LIMIT 1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT ingredient_id, measure FROM recipe_ingredients WHERE recipe_id=? ORDER BY line", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var ri model.RecipeIngredient
		if err := rows.Scan(&ri.IngredientID, &ri.Measure); err != nil {
			return nil, err
		}
		rec.Ingredients = append(rec.Ingredients, ri)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create inserts an owner-tagged recipe together with its ingredient lines in
// one transaction and returns the new id. Lines keep their input order and a
// recipe may list the same ingredient more than once.
func (r *RecipeRepo) Create(ctx context.Context, rec model.Recipe) (uint64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO recipes (title, category, area, instructions, description, thumb, preview, time, youtube, tags, owner_id) VALUES (?,?,?,?,?,?,?,?,?,?,?)",
		rec.Title, rec.Category, rec.Area, rec.Instructions, rec.Description,
		rec.Thumb, rec.Preview, rec.Time, rec.Youtube, rec.Tags, rec.OwnerID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for i, ing := range rec.Ingredients {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO recipe_ingredients (recipe_id, line, ingredient_id, measure) VALUES (?,?,?,?)",
			id, i, ing.IngredientID, ing.Measure); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Delete removes a recipe and, via cascading foreign keys, its ingredient
// lines and favorites memberships.
func (r *RecipeRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM recipes WHERE id=?", id)
	return err
}

// ListByCategory returns every recipe in the given category. An empty slice
// is a valid outcome; the category itself is not validated here.
func (r *RecipeRepo) ListByCategory(ctx context.Context, category string) ([]model.Recipe, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+recipeColumns+" FROM recipes WHERE category=?", category)
	if err != nil {
		return nil, err
	}
	return collectRecipes(rows)
}

// ListByCategoryLimited returns up to limit recipes of one category, used by
// the curated main page view.
func (r *RecipeRepo) ListByCategoryLimited(ctx context.Context, category string, limit int) ([]model.Recipe, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+recipeColumns+" FROM recipes WHERE category=? LIMIT ?", category, limit)
	if err != nil {
		return nil, err
	}
	return collectRecipes(rows)
}

// ListPopular returns the top 4 recipes by favorites count among recipes with
// at least one favorite. Fewer than 4 qualifying recipes is a valid result.
func (r *RecipeRepo) ListPopular(ctx context.Context) ([]model.Recipe, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT r.id,r.title,r.category,r.area,r.instructions,r.description,r.thumb,r.preview,r.time,r.youtube,r.tags,r.owner_id
		FROM recipes r
		JOIN recipe_favorites f ON f.recipe_id = r.id
		GROUP BY r.id
		ORDER BY COUNT(f.user_id) DESC
		LIMIT 4`)
	if err != nil {
		return nil, err
	}
	return collectRecipes(rows)
}

// SearchShared performs a case-insensitive substring match on the title,
// restricted to shared catalog recipes. User-submitted recipes never show up
// in search.
func (r *RecipeRepo) SearchShared(ctx context.Context, query string) ([]model.Recipe, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+recipeColumns+" FROM recipes WHERE owner_id IS NULL AND LOWER(title) LIKE ?",
		"%"+strings.ToLower(query)+"%")
	if err != nil {
		return nil, err
	}
	return collectRecipes(rows)
}

// ListOwned returns one page of the caller's own recipes along with the total
// count used for page math.
func (r *RecipeRepo) ListOwned(ctx context.Context, ownerID uint64, limit, offset int) ([]model.Recipe, int64, error) {
	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM recipes WHERE owner_id=?", ownerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+recipeColumns+" FROM recipes WHERE owner_id=? ORDER BY id LIMIT ? OFFSET ?",
		ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out, err := collectRecipes(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
