// Package middleware provides reusable HTTP middleware: bearer-token
// authentication, redis response caching and distributed rate limiting.
package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/soyummy/cookbook-api/internal/model"
	"github.com/soyummy/cookbook-api/internal/utils"
)

// UserSource resolves an authenticated user id to its full record. It is the
// only slice of the credential store the middleware needs, which keeps the
// gate injectable and testable without a live database.
type UserSource interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// Context keys under which Auth stores the resolved identity.
const (
	CtxUserKey   = "user"
	CtxUserIDKey = "user_id"
)

// Auth returns an Echo middleware gating protected routes. It extracts the
// bearer token from the Authorization header, verifies it, loads the user
// record and requires the presented token to equal the stored session token,
// so an older token from a previous sign-in fails consistently on every
// protected route. One success path, one failure path; no retries.
func Auth(secret string, users UserSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauthorized(c)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			uid, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return unauthorized(c)
			}

			u, err := users.GetByID(c.Request().Context(), uid)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return unauthorized(c)
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"status": "error", "code": http.StatusInternalServerError, "message": "Internal Server Error",
				})
			}
			// Single-session rule: only the most recently issued token is live.
			if !u.Token.Valid || u.Token.String != raw {
				return unauthorized(c)
			}

			c.Set(CtxUserKey, u)
			c.Set(CtxUserIDKey, u.ID)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"status":  "error",
		"code":    http.StatusUnauthorized,
		"message": "Unauthorized",
	})
}

// CurrentUser pulls the user record stored by Auth out of the context.
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get(CtxUserKey).(model.User)
	return u, ok
}
