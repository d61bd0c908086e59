package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/searchComics", h.searchComics)
		r.Post("/users/register", h.register)
		r.Post("/users/login", h.login)
	})

	// routes behind bearer-token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/me", h.me)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
