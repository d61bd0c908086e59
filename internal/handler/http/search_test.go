package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/comicgate/comicgate/internal/catalog"
	"github.com/comicgate/comicgate/internal/service"
	"github.com/comicgate/comicgate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchRequest(term, filterType string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/searchComics", nil)
	q := req.URL.Query()
	if term != "" {
		q.Set("search_term", term)
	}
	if filterType != "" {
		q.Set("filter_type", filterType)
	}
	req.URL.RawQuery = q.Encode()
	return req
}

func TestSearchComics_Success(t *testing.T) {
	search := &mockSearchService{
		searchFn: func(_ context.Context, term, filterType string) ([]models.NormalizedResult, error) {
			assert.Equal(t, "Thor", term)
			assert.Equal(t, "character", filterType)
			return []models.NormalizedResult{
				{ID: 1, Label: "Thor", ImageURL: "http://x.jpg", Meta: "5"},
			}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, search)
	rec := httptest.NewRecorder()

	h.searchComics(rec, searchRequest("Thor", "character"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 1)
	assert.Equal(t, "Thor", body.Results[0].Label)
}

func TestSearchComics_EmptyResultsIsOK(t *testing.T) {
	search := &mockSearchService{
		searchFn: func(_ context.Context, _, _ string) ([]models.NormalizedResult, error) {
			return []models.NormalizedResult{}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, search)
	rec := httptest.NewRecorder()

	h.searchComics(rec, searchRequest("nobody", "character"))

	require.Equal(t, http.StatusOK, rec.Code)
	// zero matches is an empty list, not null and not an error
	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
}

func TestSearchComics_UnknownFilterTypeIs400(t *testing.T) {
	search := &mockSearchService{
		searchFn: func(_ context.Context, term, filterType string) ([]models.NormalizedResult, error) {
			return nil, service.ErrUnknownFilterType
		},
	}

	h := newTestHandler(t, &mockAuthService{}, search)

	for _, term := range []string{"Thor", "42", ""} {
		rec := httptest.NewRecorder()
		h.searchComics(rec, searchRequest(term, "banana"))

		assert.Equal(t, http.StatusBadRequest, rec.Code, "search_term %q", term)
		assert.NotEmpty(t, decodeErrorResponse(t, rec).Error)
	}
}

func TestSearchComics_MissingTermIs400(t *testing.T) {
	search := &mockSearchService{
		searchFn: func(_ context.Context, term, filterType string) ([]models.NormalizedResult, error) {
			return nil, service.ErrInvalidDataProvided
		},
	}

	h := newTestHandler(t, &mockAuthService{}, search)
	rec := httptest.NewRecorder()

	h.searchComics(rec, searchRequest("", "character"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchComics_UpstreamFailureIs502(t *testing.T) {
	search := &mockSearchService{
		searchFn: func(_ context.Context, _, _ string) ([]models.NormalizedResult, error) {
			return nil, catalog.ErrUpstream
		},
	}

	h := newTestHandler(t, &mockAuthService{}, search)
	rec := httptest.NewRecorder()

	h.searchComics(rec, searchRequest("Thor", "character"))

	// infrastructure failure, never an empty 200
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotEmpty(t, decodeErrorResponse(t, rec).Error)
}

func TestSearchComics_MalformedUpstreamIs502(t *testing.T) {
	search := &mockSearchService{
		searchFn: func(_ context.Context, _, _ string) ([]models.NormalizedResult, error) {
			return nil, catalog.ErrMalformedEntity
		},
	}

	h := newTestHandler(t, &mockAuthService{}, search)
	rec := httptest.NewRecorder()

	h.searchComics(rec, searchRequest("Thor", "character"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
