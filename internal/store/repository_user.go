package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrNameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrNameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrNameAlreadyExists
		}
		return models.User{}, err
	}

	return user, nil
}

// FindUserByName retrieves the account record whose name matches the given
// unique name.
//
// Error handling:
//   - sql.ErrNoRows → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByName(ctx context.Context, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByName, name)

	// find user by name
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByName").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByName").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}
