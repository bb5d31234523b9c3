package model

import "database/sql"

// Recipe represents a row in the `recipes` table. OwnerID is NULL for shared
// catalog recipes seeded by the system; a non-NULL owner restricts visibility
// to that user. Ingredients live in the recipe_ingredients table and are only
// populated on single-recipe reads.
type Recipe struct {
	ID           uint64             // recipes.id
	Title        string             // recipes.title
	Category     string             // recipes.category
	Area         sql.NullString     // recipes.area
	Instructions string             // recipes.instructions
	Description  string             // recipes.description
	Thumb        string             // recipes.thumb
	Preview      sql.NullString     // recipes.preview
	Time         string             // recipes.time (minutes as free text, kept verbatim)
	Youtube      sql.NullString     // recipes.youtube
	Tags         sql.NullString     // recipes.tags (comma separated)
	OwnerID      sql.NullInt64      // recipes.owner_id (NULL = shared catalog)
	Ingredients  []RecipeIngredient // recipe_ingredients rows
}

// RecipeIngredient links a recipe to a reference ingredient together with the
// free-form measure string ("1 tsp", "200 g").
type RecipeIngredient struct {
	IngredientID uint64 `json:"id"`
	Measure      string `json:"measure"`
}

// Owner returns the owner id and whether the recipe has one.
func (r *Recipe) Owner() (uint64, bool) {
	if !r.OwnerID.Valid {
		return 0, false
	}
	return uint64(r.OwnerID.Int64), true
}
