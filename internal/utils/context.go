// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/comicgate/comicgate/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key used to store the authenticated identity claims in
// the context. Used together with GetClaimsFromContext for type-safe
// retrieval of the claims from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClaimsCtxKey, claims)
var ClaimsCtxKey = contextKey("claims")

// GetClaimsFromContext retrieves the authenticated identity claims from the
// context.
//
// Returns the claims and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}
