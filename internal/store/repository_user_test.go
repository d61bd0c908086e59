package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "name", "email", "password_hash", "created_at"}).
		AddRow(1, user.Name, user.Email, user.PasswordHash, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Name != user.Name {
		t.Errorf("expected name %s, got %s", user.Name, created.Name)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be populated")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Name: "alice", Email: "alice@example.com", PasswordHash: "hash"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrNameAlreadyExists) {
		t.Fatalf("expected ErrNameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Name: "alice", Email: "alice@example.com", PasswordHash: "hash"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrNameAlreadyExists) {
		t.Fatal("connection failure must not map to ErrNameAlreadyExists")
	}
}

func TestFindUserByName_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "name", "email", "password_hash", "created_at"}).
		AddRow(7, "alice", "alice@example.com", "$2a$10$hash", now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("alice").
		WillReturnRows(rows)

	found, err := repo.FindUserByName(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
	if found.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %s", found.Email)
	}
}

func TestFindUserByName_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password_hash", "created_at"})

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnRows(rows)

	_, err := repo.FindUserByName(ctx, "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
