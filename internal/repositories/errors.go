// Package repositories holds the in-memory entity stores and their
// failure taxonomy.
package repositories

import "errors"

// Failure taxonomy returned by the stores. Handlers translate these to
// HTTP statuses with errors.Is; wrapped messages carry the detail.
var (
	// ErrValidation marks malformed or missing required input.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden marks an operation on an entity the caller does not own.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound marks a lookup of a nonexistent entity.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks an operation that would break a cross-entity
	// invariant, e.g. deleting a list that still has todos.
	ErrConflict = errors.New("conflict")
)
