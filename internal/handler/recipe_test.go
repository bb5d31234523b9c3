package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyummy/cookbook-api/internal/config"
	"github.com/soyummy/cookbook-api/internal/model"
)

func TestRecipeByIDRejectsNonNumericID(t *testing.T) {
	h := NewRecipeHandler(nil, nil)

	c, rec := jsonCtx(t, http.MethodGet, "/recipes/abc", "")
	c.SetParamNames("recipeId")
	c.SetParamValues("abc")
	asUser(c, 7)
	require.NoError(t, h.ByID(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOwnRecipeDeleteRejectsNonNumericID(t *testing.T) {
	h := NewOwnRecipeHandler(config.Config{}, nil)

	c, rec := jsonCtx(t, http.MethodDelete, "/ownRecipes/xyz", "")
	c.SetParamNames("recipeId")
	c.SetParamValues("xyz")
	asUser(c, 7)
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOwnRecipeAddRequiresThumbnail(t *testing.T) {
	h := NewOwnRecipeHandler(config.Config{}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Plov"))
	require.NoError(t, mw.Close())

	c, rec := newTestCtx(t, http.MethodPost, "/ownRecipes/add", &buf, mw.FormDataContentType())
	asUser(c, 7)
	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOwnRecipeAddReportsFirstMissingField(t *testing.T) {
	h := NewOwnRecipeHandler(config.Config{}, nil)

	cases := []struct {
		name    string
		fields  map[string]string
		message string
	}{
		{"all fields missing", nil, "title is required"},
		{"title present", map[string]string{"title": "Plov"}, "category is required"},
		{
			"only ingredients missing",
			map[string]string{
				"title": "Plov", "category": "Rice", "instructions": "Cook.",
				"description": "Rice dish.", "time": "60",
			},
			"ingredients is required",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			fw, err := mw.CreateFormFile("thumb", "plov.jpg")
			require.NoError(t, err)
			_, err = fw.Write([]byte("jpg"))
			require.NoError(t, err)
			for k, v := range tc.fields {
				require.NoError(t, mw.WriteField(k, v))
			}
			require.NoError(t, mw.Close())

			c, rec := newTestCtx(t, http.MethodPost, "/ownRecipes/add", &buf, mw.FormDataContentType())
			asUser(c, 7)
			require.NoError(t, h.Add(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

// The same ingredient may appear on several lines with different measures
// ("1 tsp" now, "2 tsp" later); nothing along the way may merge or drop them.
func TestRecipeKeepsDuplicateIngredientLines(t *testing.T) {
	payload := `[{"id":3,"measure":"1 tsp"},{"id":3,"measure":"2 tsp"}]`

	var lines []model.RecipeIngredient
	require.NoError(t, json.Unmarshal([]byte(payload), &lines))
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0].IngredientID, lines[1].IngredientID)

	v := toRecipeView(model.Recipe{ID: 20, Title: "Spice Cake", Ingredients: lines})
	require.Len(t, v.Ingredients, 2)
	assert.Equal(t, "1 tsp", v.Ingredients[0].Measure)
	assert.Equal(t, "2 tsp", v.Ingredients[1].Measure)
}

func TestToRecipeView(t *testing.T) {
	rec := model.Recipe{
		ID:           12,
		Title:        "Borscht",
		Category:     "Soup",
		Area:         sql.NullString{String: "Ukrainian", Valid: true},
		Instructions: "Simmer.",
		Description:  "Beet soup.",
		Thumb:        "https://cdn.example.com/borscht.jpg",
		Time:         "90",
		Tags:         sql.NullString{String: "soup,beet", Valid: true},
		OwnerID:      sql.NullInt64{Int64: 7, Valid: true},
		Ingredients:  []model.RecipeIngredient{{IngredientID: 3, Measure: "2 pcs"}},
	}

	v := toRecipeView(rec)
	assert.Equal(t, uint64(12), v.ID)
	assert.Equal(t, []string{"soup", "beet"}, v.Tags)
	assert.Equal(t, uint64(7), v.Owner)
	assert.Len(t, v.Ingredients, 1)

	shared := model.Recipe{ID: 13, Title: "Pancakes"}
	sv := toRecipeView(shared)
	assert.Zero(t, sv.Owner)
	assert.Nil(t, sv.Tags)
}
