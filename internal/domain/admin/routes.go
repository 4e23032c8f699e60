package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the admin router. Login is public; everything else
// requires a valid admin token.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/auth/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/auth/me", h.Me)
		r.Get("/stats", h.Stats)
	})

	return r
}
