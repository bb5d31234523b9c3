package policy

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soyummy/cookbook-api/internal/model"
	"github.com/soyummy/cookbook-api/internal/repository"
)

func sharedRecipe() *model.Recipe {
	return &model.Recipe{ID: 1, Title: "Shakshuka"}
}

func ownedRecipe(owner uint64) *model.Recipe {
	return &model.Recipe{
		ID:      2,
		Title:   "Family Lasagna",
		OwnerID: sql.NullInt64{Int64: int64(owner), Valid: true},
	}
}

func TestCanView(t *testing.T) {
	assert.NoError(t, CanView(sharedRecipe(), 10), "shared recipes are visible to anyone")
	assert.NoError(t, CanView(ownedRecipe(10), 10))
	assert.ErrorIs(t, CanView(ownedRecipe(10), 11), repository.ErrForbidden)
	assert.ErrorIs(t, CanView(nil, 10), ErrNilResource)
}

func TestCanDelete(t *testing.T) {
	assert.ErrorIs(t, CanDelete(sharedRecipe(), 10), repository.ErrForbidden,
		"nobody deletes catalog recipes through the API")
	assert.NoError(t, CanDelete(ownedRecipe(10), 10))
	assert.ErrorIs(t, CanDelete(ownedRecipe(10), 11), repository.ErrForbidden)
	assert.ErrorIs(t, CanDelete(nil, 10), ErrNilResource)
}
