package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/soyummy/cookbook-api/internal/middleware"
	"github.com/soyummy/cookbook-api/internal/model"
	"github.com/soyummy/cookbook-api/internal/repository"
)

// ShoppingListHandler serves the single per-user shopping list.
type ShoppingListHandler struct {
	Lists *repository.ShoppingListRepo
}

func NewShoppingListHandler(lists *repository.ShoppingListRepo) *ShoppingListHandler {
	return &ShoppingListHandler{Lists: lists}
}

type shoppingItemReq struct {
	ID      uint64 `json:"id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Thumb   string `json:"thumb" validate:"required"`
	Measure string `json:"measure" validate:"required"`
}

// Get returns the list entries; an empty list answers 204.
func (h *ShoppingListHandler) Get(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Lists.Items(ctx, u.ID)
	if err != nil {
		return internalError(c)
	}
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":      "success",
		"code":        http.StatusOK,
		"ingredients": items,
	})
}

// Add appends a denormalized ingredient snapshot to the list. Duplicates are
// kept; quantities are never merged.
func (h *ShoppingListHandler) Add(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req shoppingItemReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	item := model.ShoppingItem{
		IngredientID: req.ID,
		Title:        req.Title,
		Thumb:        req.Thumb,
		Measure:      req.Measure,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Lists.AddItem(ctx, u.ID, item); err != nil {
		return internalError(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":     "success",
		"code":       http.StatusOK,
		"message":    "Ingredient added",
		"ingredient": item,
	})
}

// Remove deletes the entry at the given zero-based index. An out-of-range
// index is a caller error, never a silent no-op.
func (h *ShoppingListHandler) Remove(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return fail(c, http.StatusBadRequest, "invalid index")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Lists.RemoveAt(ctx, u.ID, index); err != nil {
		if errors.Is(err, repository.ErrIndexOutOfRange) {
			return fail(c, http.StatusBadRequest, "index out of range")
		}
		return internalError(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":            "success",
		"code":              http.StatusOK,
		"message":           "Ingredient deleted",
		"deletedIngredient": index,
	})
}
