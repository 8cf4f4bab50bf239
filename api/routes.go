package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/dsa-learning-backend/errs"
)

// setupRoutes registers the probes at the root and the catalog resources
// under prefix. Auth is not part of this service; every route is public.
func setupRoutes(r chi.Router, handlers *routeHandlers, prefix string) {
	r.Get("/", handlers.systemHandler.root())
	r.Get("/health", handlers.systemHandler.health())
	r.Get("/ready", handlers.systemHandler.ready())

	resources := func(r chi.Router) {
		r.Route("/categories", handlers.categoryHandler.routes)
		r.Route("/examples", handlers.exampleHandler.routes)
		r.Route("/algorithms", handlers.algorithmHandler.routes)
	}

	if prefix == "" {
		resources(r)
		return
	}
	r.Route(prefix, func(r chi.Router) {
		r.Get("/health", handlers.systemHandler.health())
		resources(r)
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	NewResponder(*log.Ctx(r.Context())).WriteError(w, r, errs.NewRouteNotFoundError(r.Method, r.URL.Path))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	NewResponder(*log.Ctx(r.Context())).WriteError(w, r, errs.NewMethodNotAllowedError(r.Method, r.URL.Path))
}
