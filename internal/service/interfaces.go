// Package service implements the application's business logic: account
// registration and login with token issuance, and catalog search
// orchestration over the signed upstream client.
package service

import (
	"context"

	"github.com/comicgate/comicgate/models"
)

// AuthService handles user registration, credential verification, and JWT
// token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account from the given user data. The
	// plaintext password is hashed before persistence and never stored.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates an existing account by name and password.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed bearer token carrying the user's identity.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SearchService orchestrates one catalog search: dispatch by filter type,
// signed fetch, and normalization of the raw results.
type SearchService interface {
	Search(ctx context.Context, term, filterType string) ([]models.NormalizedResult, error)
}

// CatalogFetcher is the outbound catalog contract the search service depends
// on. Satisfied by [catalog.Client]; narrow so tests can substitute a fake.
type CatalogFetcher interface {
	FetchCharacters(ctx context.Context, namePrefix string) ([]models.RawEntity, error)
	FetchComics(ctx context.Context, titlePrefix string) ([]models.RawEntity, error)
}
