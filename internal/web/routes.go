package web

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the calculator form endpoints onto the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/calculate", h.Calculate)
	r.Post("/history/clear", h.ClearHistory)
	r.Get("/api/history", h.History)
}
