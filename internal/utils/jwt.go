package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/comicgate/comicgate/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token carrying the
// identity of the given account.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account name
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - name, email:     the identity claims the gateway itself consumes
//
// All parameters except email are required. Returns an error if any of them
// are empty or zero.
func GenerateJWTToken(issuer, name, email string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || name == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.Claims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   name,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Presence of the name identity claim
//
// Returns the decoded token model or a non-nil error if any check fails.
// Callers that must not leak which check failed should collapse the error
// into a single invalid-token outcome.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsedToken := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsedToken, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if parsedToken.Name == "" {
		return models.Token{}, errors.New("empty name claim error")
	}

	parsedToken.Token = token
	parsedToken.SignedString = tokenString

	return *parsedToken, nil
}

// ParseBearerToken extracts the token value from an "Authorization: Bearer
// <token>" header.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
