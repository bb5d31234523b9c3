package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListAddRejectsIncompleteItem(t *testing.T) {
	h := NewShoppingListHandler(nil)

	// Missing measure; every snapshot field is required.
	body := `{"id":3,"title":"Sugar","thumb":"https://cdn.example.com/sugar.png"}`
	c, rec := jsonCtx(t, http.MethodPost, "/shopping-list/add", body)
	asUser(c, 7)
	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShoppingListRemoveRejectsBadIndex(t *testing.T) {
	h := NewShoppingListHandler(nil)

	for _, idx := range []string{"abc", "-1", "1.5", ""} {
		c, rec := jsonCtx(t, http.MethodDelete, "/shopping-list/"+idx, "")
		c.SetParamNames("index")
		c.SetParamValues(idx)
		asUser(c, 7)
		require.NoError(t, h.Remove(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "index %q", idx)
	}
}

func TestShoppingListGetWithoutIdentity(t *testing.T) {
	h := NewShoppingListHandler(nil)
	c, rec := jsonCtx(t, http.MethodGet, "/shopping-list", "")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
