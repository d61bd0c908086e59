package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comicgate/comicgate/internal/config"
	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/internal/store"
	"github.com/comicgate/comicgate/internal/utils"
	"github.com/comicgate/comicgate/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashCost is the bcrypt work factor applied when hashing passwords.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	hashCost := cfg.PasswordHashCost
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		hashCost:       hashCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that Name, Email, and Password are all non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository. The
// plaintext password is dropped before the user value crosses any further
// boundary and is never logged.
//
// Returns the persisted user (with server-assigned UserID and CreatedAt) or:
//   - ErrInvalidDataProvided if any of the three fields is empty.
//   - store.ErrNameAlreadyExists if the name is already taken; the check is
//     atomic with the insert, so concurrent registrations cannot race.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Name == "" || user.Email == "" || user.Password == "" {
		log.Error().Str("name", user.Name).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrNameAlreadyExists) {
			log.Error().Str("name", user.Name).Msg("name already exists")
			return models.User{}, err
		}

		log.Err(err).Str("name", user.Name).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Name and Password are non-empty, looks up the
// account by name, and compares the stored bcrypt hash against the supplied
// password. The comparison is constant-time per bcrypt's own guarantees.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Name or Password is empty.
//   - ErrInvalidCredentials if the account does not exist or the password
//     does not match; callers cannot tell the two apart.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Name == "" || user.Password == "" {
		log.Error().Str("name", user.Name).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByName(ctx, user.Name)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("name", user.Name).Msg("login failed")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("name", user.Name).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password)); err != nil {
		log.Error().Str("name", user.Name).Msg("login failed")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the user's name and e-mail
// as identity claims, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Name, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not learn which check rejected the token.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
