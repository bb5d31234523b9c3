package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyummy/cookbook-api/internal/model"
	"github.com/soyummy/cookbook-api/internal/utils"
)

const authTestSecret = "auth-mw-secret"

// stubUsers serves a single in-memory user record.
type stubUsers struct {
	user model.User
	err  error
}

func (s *stubUsers) GetByID(_ context.Context, id uint64) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	if id != s.user.ID {
		return model.User{}, sql.ErrNoRows
	}
	return s.user, nil
}

func runAuth(t *testing.T, users UserSource, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/current", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, Auth(authTestSecret, users)(next)(c))
	return rec, reached
}

func TestAuthMissingHeader(t *testing.T) {
	rec, reached := runAuth(t, &stubUsers{}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthNotBearer(t *testing.T) {
	rec, reached := runAuth(t, &stubUsers{}, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMalformedToken(t *testing.T) {
	rec, reached := runAuth(t, &stubUsers{}, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthWrongSignature(t *testing.T) {
	access, err := utils.NewAccessToken("some-other-secret", 5, 60)
	require.NoError(t, err)

	rec, reached := runAuth(t, &stubUsers{}, "Bearer "+access.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthUnknownUser(t *testing.T) {
	access, err := utils.NewAccessToken(authTestSecret, 99, 60)
	require.NoError(t, err)

	users := &stubUsers{user: model.User{ID: 5}}
	rec, reached := runAuth(t, users, "Bearer "+access.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

// A valid, correctly signed token from an earlier sign-in is rejected once a
// newer token has been stored for the account.
func TestAuthStaleSessionToken(t *testing.T) {
	access, err := utils.NewAccessToken(authTestSecret, 5, 60)
	require.NoError(t, err)

	users := &stubUsers{user: model.User{
		ID:    5,
		Token: sql.NullString{String: "a-newer-token", Valid: true},
	}}
	rec, reached := runAuth(t, users, "Bearer "+access.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthClearedSessionToken(t *testing.T) {
	access, err := utils.NewAccessToken(authTestSecret, 5, 60)
	require.NoError(t, err)

	users := &stubUsers{user: model.User{ID: 5}} // token column is NULL after logout
	rec, reached := runAuth(t, users, "Bearer "+access.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthSuccessSetsIdentity(t *testing.T) {
	access, err := utils.NewAccessToken(authTestSecret, 5, 60)
	require.NoError(t, err)

	users := &stubUsers{user: model.User{
		ID:    5,
		Name:  "olena",
		Token: sql.NullString{String: access.Token, Valid: true},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/current", nil)
	req.Header.Set("Authorization", "Bearer "+access.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		u, ok := CurrentUser(c)
		require.True(t, ok)
		assert.Equal(t, uint64(5), u.ID)
		assert.Equal(t, "olena", u.Name)
		assert.Equal(t, uint64(5), c.Get(CtxUserIDKey))
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, Auth(authTestSecret, users)(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
