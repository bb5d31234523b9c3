package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/soyummy/cookbook-api/internal/model"
)

// ShoppingListRepo manages the single per-user shopping list. Entries are
// ordered by an explicit position column; append and remove-at-index run as
// single transactions instead of read-modify-write on the whole list, so two
// concurrent mutations for the same user cannot lose an update.
type ShoppingListRepo struct{ DB *sql.DB }

func NewShoppingListRepo(db *sql.DB) *ShoppingListRepo { return &ShoppingListRepo{DB: db} }

func (r *ShoppingListRepo) listID(ctx context.Context, q interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}, ownerID uint64) (uint64, error) {
	var id uint64
	err := q.QueryRowContext(ctx,
		"SELECT id FROM shopping_lists WHERE owner_id=? LIMIT 1", ownerID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return id, err
}

// Items returns the list entries in order. An empty slice is a valid state.
func (r *ShoppingListRepo) Items(ctx context.Context, ownerID uint64) ([]model.ShoppingItem, error) {
	listID, err := r.listID(ctx, r.DB, ownerID)
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT ingredient_id, title, thumb, measure FROM shopping_list_items WHERE list_id=? ORDER BY position",
		listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.ShoppingItem{}
	for rows.Next() {
		var it model.ShoppingItem
		if err := rows.Scan(&it.IngredientID, &it.Title, &it.Thumb, &it.Measure); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// AddItem appends an entry to the end of the list. Duplicates are allowed on
// purpose: a shopping list does not merge quantities, so adding the same
// ingredient twice yields two entries.
func (r *ShoppingListRepo) AddItem(ctx context.Context, ownerID uint64, item model.ShoppingItem) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	listID, err := r.listID(ctx, tx, ownerID)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO shopping_list_items (list_id, position, ingredient_id, title, thumb, measure)
		SELECT ?, COALESCE(MAX(position)+1, 0), ?, ?, ?, ?
		FROM shopping_list_items WHERE list_id=?`,
		listID, item.IngredientID, item.Title, item.Thumb, item.Measure, listID); err != nil {
		return err
	}
	return tx.Commit()
}

// RemoveAt deletes the entry at the given zero-based position and renumbers
// the entries behind it. An index at or past the list length returns
// ErrIndexOutOfRange.
func (r *ShoppingListRepo) RemoveAt(ctx context.Context, ownerID uint64, index int) error {
	if index < 0 {
		return ErrIndexOutOfRange
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	listID, err := r.listID(ctx, tx, ownerID)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx,
		"DELETE FROM shopping_list_items WHERE list_id=? AND position=?", listID, index)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrIndexOutOfRange
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE shopping_list_items SET position=position-1 WHERE list_id=? AND position>? ORDER BY position",
		listID, index); err != nil {
		return err
	}
	return tx.Commit()
}
