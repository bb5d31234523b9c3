package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/soyummy/cookbook-api/internal/middleware"
	"github.com/soyummy/cookbook-api/internal/model"
	"github.com/soyummy/cookbook-api/internal/validate"
)

// newTestCtx builds an Echo context with the request validator installed, the
// same way main wires it. Handlers under test here exercise only the paths
// that reject input before any store access, so repositories stay nil.
func newTestCtx(t *testing.T, method, target string, body io.Reader, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validate.New()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func jsonCtx(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	return newTestCtx(t, method, target, strings.NewReader(body), echo.MIMEApplicationJSON)
}

// asUser stores an authenticated identity the way the auth middleware does.
func asUser(c echo.Context, id uint64) {
	c.Set(middleware.CtxUserKey, model.User{ID: id, Name: "tester", Email: "tester@example.com"})
	c.Set(middleware.CtxUserIDKey, id)
}
