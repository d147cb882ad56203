package relationship

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/up4/up4-api/internal/domain/user"
	"github.com/up4/up4-api/internal/middleware"
	"github.com/up4/up4-api/internal/pkg/response"
	"github.com/up4/up4-api/internal/pkg/validator"
)

// Handler handles relationship HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates relationship handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// LikeUser handles POST /users/{id}/like
func (h *Handler) LikeUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	requesterID := middleware.GetUserID(r.Context())
	liked, err := h.service.Like(r.Context(), requesterID, targetID)
	if err != nil {
		writeRelationshipError(w, err)
		return
	}

	response.OK(w, &EdgeListResponse{UserIDs: liked})
}

// UnlikeUser handles DELETE /users/{id}/like
func (h *Handler) UnlikeUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	requesterID := middleware.GetUserID(r.Context())
	liked, err := h.service.Unlike(r.Context(), requesterID, targetID)
	if err != nil {
		writeRelationshipError(w, err)
		return
	}

	response.OK(w, &EdgeListResponse{UserIDs: liked})
}

// BlockUser handles POST /users/{id}/block
func (h *Handler) BlockUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	requesterID := middleware.GetUserID(r.Context())
	blocked, err := h.service.Block(r.Context(), requesterID, targetID)
	if err != nil {
		writeRelationshipError(w, err)
		return
	}

	response.OK(w, &EdgeListResponse{UserIDs: blocked})
}

// UnblockUser handles DELETE /users/{id}/block
func (h *Handler) UnblockUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	requesterID := middleware.GetUserID(r.Context())
	blocked, err := h.service.Unblock(r.Context(), requesterID, targetID)
	if err != nil {
		writeRelationshipError(w, err)
		return
	}

	response.OK(w, &EdgeListResponse{UserIDs: blocked})
}

// ReportUser handles POST /users/{id}/report
func (h *Handler) ReportUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req ReportUserRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	requesterID := middleware.GetUserID(r.Context())
	report, err := h.service.Report(r.Context(), requesterID, targetID, req.Message)
	if err != nil {
		writeRelationshipError(w, err)
		return
	}

	response.Created(w, ReportFromEntity(report))
}

// ListLikes handles GET /users/me/likes
func (h *Handler) ListLikes(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.GetUserID(r.Context())
	likes, err := h.service.ListLikes(r.Context(), requesterID)
	if err != nil {
		writeRelationshipError(w, err)
		return
	}

	items := make([]*LikedUserResponse, 0, len(likes))
	for _, like := range likes {
		items = append(items, LikeRelationFromEntity(like))
	}

	response.OK(w, items)
}

// ListBlocked handles GET /users/me/blocked
func (h *Handler) ListBlocked(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.GetUserID(r.Context())
	blocks, err := h.service.ListBlocks(r.Context(), requesterID)
	if err != nil {
		writeRelationshipError(w, err)
		return
	}

	items := make([]*BlockedUserResponse, 0, len(blocks))
	for _, block := range blocks {
		items = append(items, BlockRelationFromEntity(block))
	}

	response.OK(w, items)
}

// writeRelationshipError maps domain errors to HTTP responses. Precondition
// and consent violations carry the violated rule in the message.
func writeRelationshipError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, ErrSelfLike), errors.Is(err, ErrSelfBlock), errors.Is(err, ErrSelfReport):
		response.BadRequest(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrBlockedByTarget):
		response.Forbidden(w, err.Error())
	case errors.Is(err, ErrTargetBlocked), errors.Is(err, ErrNotLiked), errors.Is(err, ErrNotBlocked):
		response.Conflict(w, err.Error())
	case errors.Is(err, ErrEmptyReportMessage):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrRepositoryUnavailable), errors.Is(err, ErrPartialCommit):
		response.ServiceUnavailable(w, err.Error())
	default:
		response.InternalError(w)
	}
}
