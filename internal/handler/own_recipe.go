package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/soyummy/cookbook-api/internal/config"
	"github.com/soyummy/cookbook-api/internal/middleware"
	"github.com/soyummy/cookbook-api/internal/model"
	"github.com/soyummy/cookbook-api/internal/policy"
	"github.com/soyummy/cookbook-api/internal/repository"
	"github.com/soyummy/cookbook-api/internal/utils"
)

// OwnRecipeHandler serves the user-submitted side of the catalog: create,
// paginated listing and delete, all scoped to the authenticated owner.
type OwnRecipeHandler struct {
	Cfg     config.Config
	Recipes *repository.RecipeRepo
}

func NewOwnRecipeHandler(cfg config.Config, recipes *repository.RecipeRepo) *OwnRecipeHandler {
	return &OwnRecipeHandler{Cfg: cfg, Recipes: recipes}
}

// Add creates an owner-tagged recipe from a multipart form. The thumbnail
// file is required; ingredients arrive as a serialized JSON list and are
// parsed before storage.
func (h *OwnRecipeHandler) Add(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}

	fh, err := c.FormFile("thumb")
	if err != nil {
		return fail(c, http.StatusBadRequest, "thumbnail file is required")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	category := strings.TrimSpace(c.FormValue("category"))
	instructions := strings.TrimSpace(c.FormValue("instructions"))
	description := strings.TrimSpace(c.FormValue("description"))
	cookTime := strings.TrimSpace(c.FormValue("time"))
	ingredientsRaw := strings.TrimSpace(c.FormValue("ingredients"))

	for _, f := range []struct{ name, val string }{
		{"title", title}, {"category", category}, {"instructions", instructions},
		{"description", description}, {"time", cookTime}, {"ingredients", ingredientsRaw},
	} {
		if f.val == "" {
			return fail(c, http.StatusBadRequest, f.name+" is required")
		}
	}

	var ingredients []model.RecipeIngredient
	if err := json.Unmarshal([]byte(ingredientsRaw), &ingredients); err != nil || len(ingredients) == 0 {
		return fail(c, http.StatusBadRequest, "invalid ingredients payload")
	}

	base := fmt.Sprintf("%d_%s", u.ID, strings.ReplaceAll(title, " ", "_"))
	name, err := utils.SaveUpload(fh, h.Cfg.TmpDir, h.Cfg.ThumbDir, base)
	if err != nil {
		if errors.Is(err, utils.ErrFileTooLarge) {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		return internalError(c)
	}

	rec := model.Recipe{
		Title:        title,
		Category:     category,
		Instructions: instructions,
		Description:  description,
		Thumb:        h.Cfg.PublicBaseURL + "/thumbs/" + name,
		Time:         cookTime,
		Ingredients:  ingredients,
		OwnerID:      sql.NullInt64{Int64: int64(u.ID), Valid: true},
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Recipes.Create(ctx, rec)
	if err != nil {
		return internalError(c)
	}
	rec.ID = id

	return c.JSON(http.StatusCreated, echo.Map{
		"status":  "success",
		"code":    http.StatusCreated,
		"message": "Created",
		"recipe":  toRecipeView(rec),
	})
}

// List returns one page of the caller's own recipes.
func (h *OwnRecipeHandler) List(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}
	p := utils.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	ctx, cancel := reqCtx(c)
	defer cancel()

	recs, total, err := h.Recipes.ListOwned(ctx, u.ID, p.Limit, p.Offset)
	if err != nil {
		return internalError(c)
	}
	if len(recs) == 0 && total == 0 {
		return fail(c, http.StatusNotFound, "No recipes found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"code":   http.StatusOK,
		"recipes": echo.Map{
			"page":         p.Page,
			"perPage":      p.Limit,
			"totalPages":   utils.TotalPages(total, p.Limit),
			"totalRecipes": total,
			"data":         toRecipeViews(recs),
		},
	})
}

// Delete removes one of the caller's own recipes. Existence is checked before
// ownership; shared catalog recipes are deletable by nobody.
func (h *OwnRecipeHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("recipeId"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid recipe id")
	}
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Unauthorized")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rec, err := h.Recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Not found")
		}
		return internalError(c)
	}
	if err := policy.CanDelete(rec, u.ID); err != nil {
		if errors.Is(err, repository.ErrForbidden) {
			return fail(c, http.StatusForbidden, "Forbidden")
		}
		return internalError(c)
	}
	if err := h.Recipes.Delete(ctx, id); err != nil {
		return internalError(c)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"code":    http.StatusOK,
		"message": "Recipe deleted",
	})
}
