package model

// Ingredient is read-only reference data from the `ingredients` table.
type Ingredient struct {
	ID          uint64 // ingredients.id
	Title       string // ingredients.title
	Description string // ingredients.description
	Thumb       string // ingredients.thumb
}

// Category is read-only reference data from the `categories` table, used to
// group the recipe catalog.
type Category struct {
	ID          uint64 // categories.id
	Title       string // categories.title
	Thumb       string // categories.thumb
	Description string // categories.description
}
