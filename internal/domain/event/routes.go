package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns event router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Discovery and lookups are public
	r.Get("/", h.Search)
	r.Get("/{id}", h.Get)

	// Attendance requires authentication
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/{id}/attend", h.Attend)
		r.Delete("/{id}/attend", h.Unattend)
	})

	return r
}
