package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteAddRequiresRecipeID(t *testing.T) {
	h := NewFavoriteHandler(nil)

	for _, body := range []string{`{}`, `{"recipeId":0}`, `{bad`} {
		c, rec := jsonCtx(t, http.MethodPost, "/favorites/add", body)
		asUser(c, 7)
		require.NoError(t, h.Add(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestFavoriteRemoveRequiresRecipeID(t *testing.T) {
	h := NewFavoriteHandler(nil)
	c, rec := jsonCtx(t, http.MethodDelete, "/favorites/delete", `{}`)
	asUser(c, 7)
	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFavoriteListWithoutIdentity(t *testing.T) {
	h := NewFavoriteHandler(nil)
	c, rec := jsonCtx(t, http.MethodGet, "/favorites", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
