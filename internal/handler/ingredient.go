package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soyummy/cookbook-api/internal/repository"
)

// IngredientHandler serves the read-only ingredient reference data.
type IngredientHandler struct {
	Ingredients *repository.IngredientRepo
}

func NewIngredientHandler(ingredients *repository.IngredientRepo) *IngredientHandler {
	return &IngredientHandler{Ingredients: ingredients}
}

// List returns every reference ingredient.
func (h *IngredientHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	ings, err := h.Ingredients.ListAll(ctx)
	if err != nil {
		return internalError(c)
	}
	if len(ings) == 0 {
		return fail(c, http.StatusNotFound, "No ingredients found")
	}

	type ingredientView struct {
		ID          uint64 `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Thumb       string `json:"thumb"`
	}
	out := make([]ingredientView, 0, len(ings))
	for _, ing := range ings {
		out = append(out, ingredientView{ID: ing.ID, Name: ing.Title, Description: ing.Description, Thumb: ing.Thumb})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":      "OK",
		"code":        http.StatusOK,
		"ingredients": out,
	})
}
