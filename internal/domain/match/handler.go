package match

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/up4/up4-api/internal/domain/event"
	"github.com/up4/up4-api/internal/domain/user"
	"github.com/up4/up4-api/internal/middleware"
	"github.com/up4/up4-api/internal/pkg/database"
	"github.com/up4/up4-api/internal/pkg/response"
)

// Handler handles match HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates match handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// FindCandidates handles GET /matches
func (h *Handler) FindCandidates(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.GetUserID(r.Context())
	candidates, err := h.service.FindCandidates(r.Context(), requesterID)
	if err != nil {
		writeMatchError(w, err)
		return
	}

	items := make([]*CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, CandidateFromEntity(c))
	}

	response.OK(w, items)
}

// SharedEvents handles GET /matches/{id}/shared-events
func (h *Handler) SharedEvents(w http.ResponseWriter, r *http.Request) {
	otherID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	requesterID := middleware.GetUserID(r.Context())
	events, err := h.service.SharedEvents(r.Context(), requesterID, otherID)
	if err != nil {
		writeMatchError(w, err)
		return
	}

	response.OK(w, event.EventsFromEntities(events))
}

// ListLikedBy handles GET /matches/liked-by
func (h *Handler) ListLikedBy(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.GetUserID(r.Context())
	users, err := h.service.ListLikedBy(r.Context(), requesterID)
	if err != nil {
		writeMatchError(w, err)
		return
	}

	items := make([]*LikedByResponse, 0, len(users))
	for _, u := range users {
		items = append(items, LikedByFromEntity(u))
	}

	response.OK(w, items)
}

func writeMatchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrInvalidFilter):
		response.BadRequest(w, err.Error())
	case errors.Is(err, database.ErrUnavailable):
		response.ServiceUnavailable(w, err.Error())
	default:
		response.InternalError(w)
	}
}
