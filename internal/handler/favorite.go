package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soyummy/cookbook-api/internal/middleware"
	"github.com/soyummy/cookbook-api/internal/repository"
	"github.com/soyummy/cookbook-api/internal/utils"
)

// FavoriteHandler serves the user's favorites relation over shared recipes.
type FavoriteHandler struct {
	Favorites *repository.FavoriteRepo
}

func NewFavoriteHandler(favorites *repository.FavoriteRepo) *FavoriteHandler {
	return &FavoriteHandler{Favorites: favorites}
}

type favoriteReq struct {
	RecipeID uint64 `json:"recipeId"`
}

// List returns one page of the caller's favorited recipes with the total page
// count derived from the same membership filter.
func (h *FavoriteHandler) List(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}
	p := utils.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	ctx, cancel := reqCtx(c)
	defer cancel()

	recs, total, err := h.Favorites.ListForUser(ctx, u.ID, p.Limit, p.Offset)
	if err != nil {
		return internalError(c)
	}
	if total == 0 {
		return fail(c, http.StatusNotFound, "No favorites found")
	}

	out := make([]recipeCard, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recipeCard{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			Thumb:       rec.Thumb,
			Time:        rec.Time,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":     "OK",
		"code":       http.StatusOK,
		"totalPages": utils.TotalPages(total, p.Limit),
		"data":       out,
	})
}

// Add inserts the recipe into the caller's favorites. Adding a recipe that is
// already favorited is a no-op success.
func (h *FavoriteHandler) Add(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req favoriteReq
	if err := c.Bind(&req); err != nil || req.RecipeID == 0 {
		return fail(c, http.StatusBadRequest, "recipeId is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Favorites.Add(ctx, req.RecipeID, u.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Not found")
		}
		return internalError(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "OK",
		"code":    http.StatusOK,
		"message": "Recipe added to favorites",
	})
}

// Remove deletes the recipe from the caller's favorites. Removing an absent
// pair is a no-op success.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}
	var req favoriteReq
	if err := c.Bind(&req); err != nil || req.RecipeID == 0 {
		return fail(c, http.StatusBadRequest, "recipeId is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Favorites.Remove(ctx, req.RecipeID, u.ID); err != nil {
		return internalError(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "OK",
		"code":    http.StatusOK,
		"message": "Recipe deleted from favorites",
	})
}
