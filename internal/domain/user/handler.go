package user

import (
	"errors"
	"net/http"

	"github.com/up4/up4-api/internal/middleware"
	"github.com/up4/up4-api/internal/pkg/database"
	"github.com/up4/up4-api/internal/pkg/response"
	"github.com/up4/up4-api/internal/pkg/validator"
)

// Handler handles user HTTP requests
type Handler struct {
	repo Repository
}

// NewHandler creates user handler
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Me handles GET /me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	u, err := h.repo.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			response.ServiceUnavailable(w, err.Error())
			return
		}
		response.InternalError(w)
		return
	}
	if u == nil {
		response.NotFound(w, "User not found")
		return
	}

	response.OK(w, ProfileFromEntity(u))
}

// UpdatePreferences handles PUT /me/preferences
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req UpdatePreferencesRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID := middleware.GetUserID(r.Context())
	u, err := h.repo.UpdatePreferences(r.Context(), userID, req.MinAgePref, req.MaxAgePref, req.GenderPrefs)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		if errors.Is(err, ErrInvalidAgeRange) {
			response.BadRequest(w, err.Error())
			return
		}
		if errors.Is(err, database.ErrUnavailable) {
			response.ServiceUnavailable(w, err.Error())
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, ProfileFromEntity(u))
}
