// Package store implements the persistence layer of the gateway: the
// PostgreSQL connection, schema migrations, and the users repository.
package store

import (
	"context"
	"fmt"

	"github.com/comicgate/comicgate/internal/config"
	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/migrations"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects to the configured database, applies pending schema
// migrations, and constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}, nil
}
