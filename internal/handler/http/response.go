package http

import (
	"net/http"

	"github.com/comicgate/comicgate/internal/utils"
	"github.com/comicgate/comicgate/models"
)

// errorResponse is the uniform error body: {"error": "..."}.
// Messages are fixed public strings; internal error detail never reaches
// the response.
type errorResponse struct {
	Error string `json:"error"`
}

// searchResponse wraps normalized search results: {"results": [...]}.
type searchResponse struct {
	Results []models.NormalizedResult `json:"results"`
}

// tokenResponse is the body returned by register and login.
type tokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// identityResponse is the body returned by the authenticated /users/me call.
type identityResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// writeError writes the uniform JSON error body with the given status.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, errorResponse{Error: message}, statusCode)
}
