package service

import (
	"github.com/comicgate/comicgate/internal/config"
	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/internal/store"
)

// Services aggregates every business-logic service the transport layer
// depends on. Constructed once at startup and injected into the handler;
// there are no package-level singletons.
type Services struct {
	AuthService   AuthService
	SearchService SearchService
}

// NewServices constructs all services over the given storages and catalog
// client.
func NewServices(storages *store.Storages, catalogFetcher CatalogFetcher, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg, logger),
		SearchService: NewSearchService(catalogFetcher, logger),
	}
}
