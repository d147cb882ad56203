package match

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns match router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// All routes require authentication
	r.Use(authMiddleware)

	r.Get("/", h.FindCandidates)
	r.Get("/liked-by", h.ListLikedBy)
	r.Get("/{id}/shared-events", h.SharedEvents)

	return r
}
