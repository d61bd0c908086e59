package service

import (
	"context"
	"testing"

	"github.com/comicgate/comicgate/internal/catalog"
	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatalogFetcher implements CatalogFetcher for unit tests.
type mockCatalogFetcher struct {
	fetchCharactersFn func(ctx context.Context, namePrefix string) ([]models.RawEntity, error)
	fetchComicsFn     func(ctx context.Context, titlePrefix string) ([]models.RawEntity, error)
}

func (m *mockCatalogFetcher) FetchCharacters(ctx context.Context, namePrefix string) ([]models.RawEntity, error) {
	return m.fetchCharactersFn(ctx, namePrefix)
}

func (m *mockCatalogFetcher) FetchComics(ctx context.Context, titlePrefix string) ([]models.RawEntity, error) {
	return m.fetchComicsFn(ctx, titlePrefix)
}

func rawCharacter() models.RawEntity {
	return models.RawEntity{
		ID:        1,
		Name:      "Thor",
		Thumbnail: models.Thumbnail{Path: "http://x"},
		Comics:    &models.ComicsSummary{Available: 5},
	}
}

func rawComic() models.RawEntity {
	return models.RawEntity{
		ID:        2,
		Title:     "X",
		Thumbnail: models.Thumbnail{Path: "http://y"},
		Dates:     []models.EntityDate{{Type: "onsale", Date: "2020-01-01"}},
	}
}

func TestSearch_DispatchesCharacters(t *testing.T) {
	fetcher := &mockCatalogFetcher{
		fetchCharactersFn: func(_ context.Context, namePrefix string) ([]models.RawEntity, error) {
			assert.Equal(t, "Thor", namePrefix)
			return []models.RawEntity{rawCharacter()}, nil
		},
		fetchComicsFn: func(_ context.Context, _ string) ([]models.RawEntity, error) {
			t.Fatal("comics endpoint must not be called for a character search")
			return nil, nil
		},
	}

	search := NewSearchService(fetcher, logger.Nop())

	results, err := search.Search(context.Background(), "Thor", "character")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.NormalizedResult{
		ID:       1,
		Label:    "Thor",
		ImageURL: "http://x.jpg",
		Meta:     "5",
	}, results[0])
}

func TestSearch_DispatchesComics(t *testing.T) {
	fetcher := &mockCatalogFetcher{
		fetchComicsFn: func(_ context.Context, titlePrefix string) ([]models.RawEntity, error) {
			assert.Equal(t, "X", titlePrefix)
			return []models.RawEntity{rawComic()}, nil
		},
	}

	search := NewSearchService(fetcher, logger.Nop())

	results, err := search.Search(context.Background(), "X", "comic")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "2020-01-01", results[0].Meta)
}

func TestSearch_FilterTypeCaseInsensitive(t *testing.T) {
	fetcher := &mockCatalogFetcher{
		fetchCharactersFn: func(_ context.Context, _ string) ([]models.RawEntity, error) {
			return []models.RawEntity{rawCharacter()}, nil
		},
	}

	search := NewSearchService(fetcher, logger.Nop())

	for _, filterType := range []string{"Character", "CHARACTER", "chArAcTer"} {
		_, err := search.Search(context.Background(), "Thor", filterType)
		assert.NoError(t, err, "filter_type %q", filterType)
	}
}

func TestSearch_UnknownFilterType(t *testing.T) {
	fetcher := &mockCatalogFetcher{
		fetchCharactersFn: func(_ context.Context, _ string) ([]models.RawEntity, error) {
			t.Fatal("no fetch must happen for an unknown filter type")
			return nil, nil
		},
		fetchComicsFn: func(_ context.Context, _ string) ([]models.RawEntity, error) {
			t.Fatal("no fetch must happen for an unknown filter type")
			return nil, nil
		},
	}

	search := NewSearchService(fetcher, logger.Nop())

	for _, filterType := range []string{"banana", "", "characters"} {
		_, err := search.Search(context.Background(), "Thor", filterType)
		assert.ErrorIs(t, err, ErrUnknownFilterType, "filter_type %q", filterType)
	}
}

func TestSearch_EmptyTerm(t *testing.T) {
	search := NewSearchService(&mockCatalogFetcher{}, logger.Nop())

	_, err := search.Search(context.Background(), "", "character")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSearch_UpstreamFailurePropagates(t *testing.T) {
	fetcher := &mockCatalogFetcher{
		fetchCharactersFn: func(_ context.Context, _ string) ([]models.RawEntity, error) {
			return nil, catalog.ErrUpstream
		},
	}

	search := NewSearchService(fetcher, logger.Nop())

	_, err := search.Search(context.Background(), "Thor", "character")
	assert.ErrorIs(t, err, catalog.ErrUpstream)
}

func TestSearch_ZeroMatchesIsEmptySuccess(t *testing.T) {
	fetcher := &mockCatalogFetcher{
		fetchCharactersFn: func(_ context.Context, _ string) ([]models.RawEntity, error) {
			return []models.RawEntity{}, nil
		},
	}

	search := NewSearchService(fetcher, logger.Nop())

	results, err := search.Search(context.Background(), "nobody", "character")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_SkipsMalformedEntitiesInBatch(t *testing.T) {
	fetcher := &mockCatalogFetcher{
		fetchCharactersFn: func(_ context.Context, _ string) ([]models.RawEntity, error) {
			return []models.RawEntity{rawCharacter(), {ID: 99}}, nil
		},
	}

	search := NewSearchService(fetcher, logger.Nop())

	results, err := search.Search(context.Background(), "Thor", "character")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].ID)
}
