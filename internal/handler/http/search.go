package http

import (
	"errors"
	"net/http"

	"github.com/comicgate/comicgate/internal/catalog"
	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/internal/service"
	"github.com/comicgate/comicgate/internal/utils"
)

// searchComics handles GET /searchComics?search_term=&filter_type=.
//
// The filter type is an explicit, required dispatch parameter: "character"
// or "comic", case-insensitive. Responses:
//   - 200 {"results": [...]}   — including an empty list for zero matches
//   - 400 {"error": ...}       — missing term or unrecognized filter type
//   - 502 {"error": ...}       — upstream catalog failure; never conflated
//     with an empty result set
func (h *Handler) searchComics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	searchTerm := r.URL.Query().Get("search_term")
	filterType := r.URL.Query().Get("filter_type")

	results, err := h.services.SearchService.Search(ctx, searchTerm, filterType)
	if err != nil {
		log.Err(err).Str("filter_type", filterType).Msg("catalog search failed")
		writeError(w, searchErrorMessage(err), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, searchResponse{Results: results}, http.StatusOK)
}

// searchErrorMessage maps a search failure to its fixed public message.
func searchErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "a search term is required"
	case errors.Is(err, service.ErrUnknownFilterType):
		return "filter_type must be either 'character' or 'comic'"
	case errors.Is(err, catalog.ErrUpstream):
		return "error querying the content catalog"
	case errors.Is(err, catalog.ErrMalformedEntity):
		return "unexpected content catalog response"
	default:
		return http.StatusText(http.StatusInternalServerError)
	}
}
