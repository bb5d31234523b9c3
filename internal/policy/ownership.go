// Package policy evaluates the resource-ownership rule applied to single
// recipe reads and deletes. The order of checks is fixed: existence is the
// caller's first check (a nil recipe reaching this package is an internal
// error, not an access decision), ownership comes second.
package policy

import (
	"errors"

	"github.com/soyummy/cookbook-api/internal/model"
	"github.com/soyummy/cookbook-api/internal/repository"
)

// ErrNilResource reports a caller bug: ownership was evaluated before the
// existence check. Handlers must 404 on a missing recipe first.
var ErrNilResource = errors.New("policy: ownership check on nil recipe")

// CanView decides read access. A recipe without an owner belongs to the
// shared catalog and is visible to any authenticated user; an owned recipe is
// visible only to its owner.
func CanView(rec *model.Recipe, userID uint64) error {
	if rec == nil {
		return ErrNilResource
	}
	owner, ok := rec.Owner()
	if !ok {
		return nil
	}
	if owner != userID {
		return repository.ErrForbidden
	}
	return nil
}

// CanDelete decides delete access. Shared catalog recipes have no owner to
// match and are deletable by nobody through this API; an owned recipe is
// deletable only by its owner. Owner ids compare structurally as integers.
func CanDelete(rec *model.Recipe, userID uint64) error {
	if rec == nil {
		return ErrNilResource
	}
	owner, ok := rec.Owner()
	if !ok || owner != userID {
		return repository.ErrForbidden
	}
	return nil
}
