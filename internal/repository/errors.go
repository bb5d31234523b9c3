// Package repository implements data access over MySQL. This file defines
// sentinel error values reused across repositories so that handlers can
// distinguish failure scenarios without inspecting driver errors.
package repository

import "errors"

// ErrNotFound is returned when a requested resource does not exist.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers translate this into an HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrEmailExists is returned when registration hits the unique email
// constraint. Handlers translate this into an HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrIndexOutOfRange is returned when a shopping list mutation addresses a
// position past the end of the list. Handlers translate this into an
// HTTP 400; it must never be silently ignored.
var ErrIndexOutOfRange = errors.New("index out of range")
