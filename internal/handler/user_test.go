package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soyummy/cookbook-api/internal/config"
)

func userHandler() *UserHandler {
	return NewUserHandler(config.Config{JWTSecret: "test", AccessTTLMin: 60, BcryptCost: 4}, nil, nil)
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	c, rec := jsonCtx(t, http.MethodPost, "/users/register", "{not json")
	require.NoError(t, userHandler().Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	body := `{"name":"olena","email":"olena@example.com","password":"weak"}`
	c, rec := jsonCtx(t, http.MethodPost, "/users/register", body)
	require.NoError(t, userHandler().Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterRejectsShortName(t *testing.T) {
	body := `{"name":"ab","email":"olena@example.com","password":"Abc123"}`
	c, rec := jsonCtx(t, http.MethodPost, "/users/register", body)
	require.NoError(t, userHandler().Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	body := `{"name":"olena","email":"not-an-email","password":"Abc123"}`
	c, rec := jsonCtx(t, http.MethodPost, "/users/register", body)
	require.NoError(t, userHandler().Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignInRejectsMissingFields(t *testing.T) {
	c, rec := jsonCtx(t, http.MethodPost, "/users/signin", `{"email":"olena@example.com"}`)
	require.NoError(t, userHandler().SignIn(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCurrentWithoutIdentity(t *testing.T) {
	c, rec := jsonCtx(t, http.MethodGet, "/users/current", "")
	require.NoError(t, userHandler().Current(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateNameRejectsInvalidName(t *testing.T) {
	c, rec := jsonCtx(t, http.MethodPatch, "/users/current/name", `{"name":"x"}`)
	asUser(c, 7)
	require.NoError(t, userHandler().UpdateName(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAvatarRequiresFile(t *testing.T) {
	c, rec := jsonCtx(t, http.MethodPatch, "/users/current/avatar", "")
	asUser(c, 7)
	require.NoError(t, userHandler().UpdateAvatar(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
