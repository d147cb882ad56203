package event

import (
	"time"

	"github.com/google/uuid"
)

// SearchEventsRequest for GET /events query params
type SearchEventsRequest struct {
	Location   string   `json:"location" validate:"required,min=2,max=120"`
	Categories []string `json:"categories" validate:"omitempty,dive,event_category"`
	Dates      string   `json:"dates" validate:"omitempty,max=40"`
	Page       int      `json:"page" validate:"omitempty,gte=1"`
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"external_id"`
	Title      string    `json:"title"`
	Venue      string    `json:"venue,omitempty"`
	City       string    `json:"city,omitempty"`
	Category   string    `json:"category,omitempty"`
	StartsAt   string    `json:"starts_at,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
}

// EventFromEntity converts entity to response
func EventFromEntity(e *Event) *EventResponse {
	resp := &EventResponse{
		ID:         e.ID,
		ExternalID: e.ExternalID,
		Title:      e.Title,
		Category:   e.Category,
	}
	if e.Venue.Valid {
		resp.Venue = e.Venue.String
	}
	if e.City.Valid {
		resp.City = e.City.String
	}
	if e.StartsAt.Valid {
		resp.StartsAt = e.StartsAt.Time.Format(time.RFC3339)
	}
	if e.ImageURL.Valid {
		resp.ImageURL = e.ImageURL.String
	}
	return resp
}

// EventsFromEntities converts a slice of entities to responses
func EventsFromEntities(events []*Event) []*EventResponse {
	items := make([]*EventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, EventFromEntity(e))
	}
	return items
}
