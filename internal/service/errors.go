// Package service implements the business rules of the rental backend on
// top of an injected storage.Store.
package service

import "errors"

// Service error taxonomy. Every operation fails with one of these
// sentinels wrapped in a human-readable message; the HTTP layer maps them
// to status codes.
var (
	// ErrNotFound: a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict: a uniqueness or single-active-contract violation.
	ErrConflict = errors.New("conflict")

	// ErrBadRequest: an empty or invalid patch, or an invalid field value.
	ErrBadRequest = errors.New("bad request")

	// ErrForbidden: a role-gated transition was denied.
	ErrForbidden = errors.New("forbidden")
)
