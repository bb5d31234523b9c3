// Package handler implements the HTTP handlers. Every response is a
// {status, code, ...} JSON envelope; error envelopes carry a fixed message
// and never leak store internals to clients.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// fail writes an error envelope for the given status code.
func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{
		"status":  failStatus(code),
		"code":    code,
		"message": msg,
	})
}

func failStatus(code int) string {
	switch code {
	case http.StatusNotFound:
		return "Not Found"
	case http.StatusUnauthorized:
		return "Unauthorized"
	default:
		return "error"
	}
}

// internalError is the single terminal responder for uncategorized failures.
func internalError(c echo.Context) error {
	return fail(c, http.StatusInternalServerError, "Internal Server Error")
}

// reqCtx bounds every store round trip to 5 seconds on top of whatever the
// HTTP layer already imposes.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
