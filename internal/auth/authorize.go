package auth

import "errors"

// ErrRoleNotAllowed is returned when the acting user's role is not in the
// set of roles an operation allows.
var ErrRoleNotAllowed = errors.New("role not allowed for this operation")

// Actor identifies the authenticated user performing an operation, as
// resolved from a bearer token.
type Actor struct {
	ID    string
	Email string
	Role  string
}

// Authorize checks whether a role is among the allowed roles for an
// operation. It is a pure guard invoked at the start of each role-gated
// service operation rather than wrapped around handlers, so every rule is
// visible next to the logic it protects.
func Authorize(role string, allowed ...string) error {
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}
	return ErrRoleNotAllowed
}
