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
	router.Use(withGZip)

	router.Get("/ping", h.ping)

	router.Route("/api", func(r chi.Router) {
		r.Get("/environments", h.getEnvironments)
		r.Get("/values/{environment}", h.getValues)
		r.Get("/resolved", h.getResolved) // default environment
		r.Get("/resolved/{environment}", h.getResolved)
		r.Get("/version", h.getServerVersion)
	})

	return router
}
