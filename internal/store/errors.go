package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNameAlreadyExists is returned when an attempt to register a new
	// account fails because a user with the same name already exists. The
	// users table enforces this with a UNIQUE constraint, so the check is
	// atomic with the insert: two concurrent registrations of the same name
	// cannot both succeed.
	ErrNameAlreadyExists = errors.New("name already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")
)
