package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the booking router. Intake is public; listing and status
// transitions require an admin token.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Patch("/{id}", h.UpdateStatus)
	})

	return r
}
