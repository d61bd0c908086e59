package http

import (
	"errors"
	"net/http"

	"github.com/comicgate/comicgate/internal/catalog"
	"github.com/comicgate/comicgate/internal/service"
	"github.com/comicgate/comicgate/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUnknownFilterType:       http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrNameAlreadyExists: http.StatusConflict,

	catalog.ErrUpstream:        http.StatusBadGateway,
	catalog.ErrMalformedEntity: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
