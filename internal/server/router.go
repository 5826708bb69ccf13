package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-calc-frontends/internal/handlers"
	"go-calc-frontends/internal/observability"
	"go-calc-frontends/internal/web"
)

// NewRouter assembles the web front end: observability middleware, liveness
// and metrics endpoints, and the calculator form routes.
func NewRouter(h *web.Handler) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	h.RegisterRoutes(r)

	return r
}
