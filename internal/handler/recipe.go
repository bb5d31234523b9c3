package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/soyummy/cookbook-api/internal/middleware"
	"github.com/soyummy/cookbook-api/internal/model"
	"github.com/soyummy/cookbook-api/internal/policy"
	"github.com/soyummy/cookbook-api/internal/repository"
)

// RecipeHandler serves the shared catalog: categories, per-category lists,
// popular ranking, the curated main page, title search and single reads.
type RecipeHandler struct {
	Recipes    *repository.RecipeRepo
	Categories *repository.CategoryRepo
}

func NewRecipeHandler(recipes *repository.RecipeRepo, categories *repository.CategoryRepo) *RecipeHandler {
	return &RecipeHandler{Recipes: recipes, Categories: categories}
}

// mainPageCategories is the fixed curation shown on the landing view, looked
// up independently per category rather than aggregated in one query.
var mainPageCategories = []string{"Breakfast", "Miscellaneous", "Chicken", "Desserts"}

// recipeView is the response shape of a recipe document.
type recipeView struct {
	ID           uint64                   `json:"id"`
	Title        string                   `json:"title"`
	Category     string                   `json:"category"`
	Area         string                   `json:"area,omitempty"`
	Instructions string                   `json:"instructions"`
	Description  string                   `json:"description"`
	Thumb        string                   `json:"thumb"`
	Preview      string                   `json:"preview,omitempty"`
	Time         string                   `json:"time"`
	Youtube      string                   `json:"youtube,omitempty"`
	Tags         []string                 `json:"tags,omitempty"`
	Ingredients  []model.RecipeIngredient `json:"ingredients,omitempty"`
	Owner        uint64                   `json:"owner,omitempty"`
}

// recipeCard is the compact shape used by list endpoints.
type recipeCard struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumb       string `json:"thumb"`
	Time        string `json:"time,omitempty"`
}

func toRecipeView(rec model.Recipe) recipeView {
	v := recipeView{
		ID:           rec.ID,
		Title:        rec.Title,
		Category:     rec.Category,
		Area:         rec.Area.String,
		Instructions: rec.Instructions,
		Description:  rec.Description,
		Thumb:        rec.Thumb,
		Preview:      rec.Preview.String,
		Time:         rec.Time,
		Youtube:      rec.Youtube.String,
		Ingredients:  rec.Ingredients,
	}
	if rec.Tags.Valid && rec.Tags.String != "" {
		v.Tags = strings.Split(rec.Tags.String, ",")
	}
	if owner, ok := rec.Owner(); ok {
		v.Owner = owner
	}
	return v
}

func toRecipeViews(recs []model.Recipe) []recipeView {
	out := make([]recipeView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecipeView(rec))
	}
	return out
}

// CategoryList returns the catalog categories.
func (h *RecipeHandler) CategoryList(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	cats, err := h.Categories.ListAll(ctx)
	if err != nil {
		return internalError(c)
	}
	if len(cats) == 0 {
		return fail(c, http.StatusNotFound, "No categories found")
	}

	type categoryView struct {
		ID          uint64 `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Thumb       string `json:"thumb"`
	}
	out := make([]categoryView, 0, len(cats))
	for _, cat := range cats {
		out = append(out, categoryView{ID: cat.ID, Name: cat.Title, Description: cat.Description, Thumb: cat.Thumb})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":     "OK",
		"code":       http.StatusOK,
		"categories": out,
	})
}

// ByCategory lists every recipe of one category. An unknown category and an
// empty category are indistinguishable here; both read as "no recipes".
func (h *RecipeHandler) ByCategory(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	recs, err := h.Recipes.ListByCategory(ctx, c.Param("category"))
	if err != nil {
		return internalError(c)
	}
	if len(recs) == 0 {
		return fail(c, http.StatusNotFound, "No recipes found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status": "OK",
		"code":   http.StatusOK,
		"data":   toRecipeViews(recs),
	})
}

// Popular returns the top recipes by favorites count.
func (h *RecipeHandler) Popular(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	recs, err := h.Recipes.ListPopular(ctx)
	if err != nil {
		return internalError(c)
	}
	if len(recs) == 0 {
		return fail(c, http.StatusNotFound, "No recipes found")
	}
	out := make([]recipeCard, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recipeCard{ID: rec.ID, Title: rec.Title, Description: rec.Description, Thumb: rec.Thumb})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "OK",
		"code":    http.StatusOK,
		"recipes": out,
	})
}

// MainPage returns up to 4 recipes for each of the four curated categories.
func (h *RecipeHandler) MainPage(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	result := make(map[string][]recipeView, len(mainPageCategories))
	total := 0
	for _, cat := range mainPageCategories {
		recs, err := h.Recipes.ListByCategoryLimited(ctx, cat, 4)
		if err != nil {
			return internalError(c)
		}
		result[cat] = toRecipeViews(recs)
		total += len(recs)
	}
	if total == 0 {
		return fail(c, http.StatusNotFound, "No recipes found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "OK",
		"code":    http.StatusOK,
		"recipes": result,
	})
}

// Search matches the query case-insensitively against shared catalog titles.
func (h *RecipeHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))

	ctx, cancel := reqCtx(c)
	defer cancel()

	recs, err := h.Recipes.SearchShared(ctx, query)
	if err != nil {
		return internalError(c)
	}
	if len(recs) == 0 {
		return fail(c, http.StatusNotFound, "Not found")
	}
	out := make([]recipeCard, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recipeCard{ID: rec.ID, Title: rec.Title, Thumb: rec.Thumb})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status": "OK",
		"code":   http.StatusOK,
		"data":   out,
	})
}

// ByID reads one recipe. Existence is checked before ownership, then the
// ownership policy decides visibility.
func (h *RecipeHandler) ByID(c echo.Context) error {
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
	if err := policy.CanView(rec, u.ID); err != nil {
		if errors.Is(err, repository.ErrForbidden) {
			return fail(c, http.StatusForbidden, "Forbidden")
		}
		return internalError(c)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"code":   http.StatusOK,
		"recipe": toRecipeView(*rec),
	})
}
