package event

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/up4/up4-api/internal/middleware"
	"github.com/up4/up4-api/internal/pkg/database"
	"github.com/up4/up4-api/internal/pkg/eventful"
	"github.com/up4/up4-api/internal/pkg/response"
	"github.com/up4/up4-api/internal/pkg/validator"
)

// Handler handles event HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates event handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search handles GET /events
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	req := SearchEventsRequest{
		Location: r.URL.Query().Get("location"),
		Dates:    r.URL.Query().Get("dates"),
	}
	if categories := r.URL.Query().Get("categories"); categories != "" {
		req.Categories = strings.Split(categories, ",")
	}
	if page := r.URL.Query().Get("page"); page != "" {
		req.Page, _ = strconv.Atoi(page)
	}

	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	events, err := h.service.Search(r.Context(), eventful.SearchQuery{
		Location:   req.Location,
		Categories: req.Categories,
		Dates:      req.Dates,
		Page:       req.Page,
	})
	if err != nil {
		writeEventError(w, err)
		return
	}

	response.OK(w, EventsFromEntities(events))
}

// Get handles GET /events/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	event, err := h.service.Get(r.Context(), eventID)
	if err != nil {
		writeEventError(w, err)
		return
	}

	response.OK(w, EventFromEntity(event))
}

// Attend handles POST /events/{id}/attend
func (h *Handler) Attend(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	requesterID := middleware.GetUserID(r.Context())
	if err := h.service.Attend(r.Context(), requesterID, eventID); err != nil {
		writeEventError(w, err)
		return
	}

	response.OK(w, map[string]string{"status": "attending"})
}

// Unattend handles DELETE /events/{id}/attend
func (h *Handler) Unattend(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	requesterID := middleware.GetUserID(r.Context())
	if err := h.service.Unattend(r.Context(), requesterID, eventID); err != nil {
		writeEventError(w, err)
		return
	}

	response.OK(w, map[string]string{"status": "not_attending"})
}

func writeEventError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, ErrEventNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrNotAttending):
		response.Conflict(w, err.Error())
	case errors.Is(err, eventful.ErrUnavailable), errors.Is(err, database.ErrUnavailable):
		response.ServiceUnavailable(w, err.Error())
	default:
		response.InternalError(w)
	}
}
