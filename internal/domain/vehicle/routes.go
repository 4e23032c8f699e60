package vehicle

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the vehicle router. Catalog reads are public; mutations
// require an admin token.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/images", h.UploadImage)
	})

	return r
}
