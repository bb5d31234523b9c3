package model

// ShoppingList maps the `shopping_lists` table. Exactly one list exists per
// user; it is created in the same transaction as the user row.
type ShoppingList struct {
	ID      uint64 // shopping_lists.id
	OwnerID uint64 // shopping_lists.owner_id (unique)
}

// ShoppingItem is one ordered entry of a shopping list. Title, Thumb and
// Measure are denormalized snapshots taken when the entry was added, not live
// references into the ingredients table.
type ShoppingItem struct {
	IngredientID uint64 `json:"id"`
	Title        string `json:"title"`
	Thumb        string `json:"thumb"`
	Measure      string `json:"measure"`
}
