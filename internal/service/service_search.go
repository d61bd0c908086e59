package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/comicgate/comicgate/internal/catalog"
	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/models"
)

// Recognized filter types for catalog searches. Matching is
// case-insensitive; the search term itself is forwarded with its case
// untouched.
const (
	FilterCharacter = "character"
	FilterComic     = "comic"
)

// searchService is the concrete implementation of SearchService.
//
// Dispatch is driven exclusively by the explicit filter type supplied by the
// caller; the service never guesses the entity kind from the shape of the
// search term.
type searchService struct {
	catalog CatalogFetcher
	logger  *logger.Logger
}

// NewSearchService constructs a SearchService over the given catalog client.
func NewSearchService(catalogFetcher CatalogFetcher, logger *logger.Logger) SearchService {
	return &searchService{
		catalog: catalogFetcher,
		logger:  logger,
	}
}

// Search runs one catalog search and returns the normalized results in
// upstream order.
//
// Returns:
//   - ErrInvalidDataProvided if term is empty.
//   - ErrUnknownFilterType if filterType is neither "character" nor "comic"
//     (case-insensitive).
//   - catalog.ErrUpstream if the upstream call fails; distinct from a nil
//     error with zero results, which means the catalog had no matches.
//   - catalog.ErrMalformedEntity if every returned entity is unparseable.
func (s *searchService) Search(ctx context.Context, term, filterType string) ([]models.NormalizedResult, error) {
	log := logger.FromContext(ctx)

	if term == "" {
		log.Error().Msg("empty search term provided")
		return nil, ErrInvalidDataProvided
	}

	var raw []models.RawEntity
	var err error
	switch strings.ToLower(filterType) {
	case FilterCharacter:
		raw, err = s.catalog.FetchCharacters(ctx, term)
	case FilterComic:
		raw, err = s.catalog.FetchComics(ctx, term)
	default:
		log.Error().Str("filter_type", filterType).Msg("unknown filter type provided")
		return nil, ErrUnknownFilterType
	}
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	return catalog.NormalizeAll(ctx, raw)
}
