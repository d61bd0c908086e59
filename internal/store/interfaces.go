package store

import (
	"context"

	"github.com/comicgate/comicgate/models"
)

// UserRepository is the persistence contract for user accounts. Accounts are
// created on register and read on login; nothing in the gateway updates or
// deletes them.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns [ErrNameAlreadyExists] when the name is
	// already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByName retrieves the account with the given unique name.
	// Returns [ErrNoUserWasFound] when no such account exists.
	FindUserByName(ctx context.Context, name string) (models.User, error)
}
