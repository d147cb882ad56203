package relationship

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns relationship router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// All routes require authentication
	r.Use(authMiddleware)

	// Like/unlike operations
	r.Post("/{id}/like", h.LikeUser)
	r.Delete("/{id}/like", h.UnlikeUser)

	// Block/unblock operations
	r.Post("/{id}/block", h.BlockUser)
	r.Delete("/{id}/block", h.UnblockUser)

	// Report
	r.Post("/{id}/report", h.ReportUser)

	// Edge listings
	r.Get("/me/likes", h.ListLikes)
	r.Get("/me/blocked", h.ListBlocked)

	return r
}
