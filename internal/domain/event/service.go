package event

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/up4/up4-api/internal/pkg/eventful"
)

// Discovery is the external event-search provider
type Discovery interface {
	Search(ctx context.Context, q eventful.SearchQuery) (*eventful.SearchResult, error)
}

// Service handles event business logic
type Service struct {
	repo      Repository
	discovery Discovery
}

// NewService creates event service. discovery may be nil; Search then
// serves stored events only.
func NewService(repo Repository, discovery Discovery) *Service {
	return &Service{repo: repo, discovery: discovery}
}

// Search queries the discovery provider and stores the results, deduped
// by external id. Discovered events become attendable local entities.
func (s *Service) Search(ctx context.Context, q eventful.SearchQuery) ([]*Event, error) {
	if s.discovery == nil {
		return s.repo.List(ctx, &ListFilter{City: optional(q.Location)})
	}

	result, err := s.discovery.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	events := make([]*Event, 0, len(result.Events))
	for _, found := range result.Events {
		stored, err := s.repo.UpsertByExternalID(ctx, fromDiscovered(found))
		if err != nil {
			return nil, err
		}
		events = append(events, stored)
	}

	return events, nil
}

// Get returns a stored event by id
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// List returns stored events matching the filter
func (s *Service) List(ctx context.Context, filter *ListFilter) ([]*Event, error) {
	return s.repo.List(ctx, filter)
}

// Attend marks the requester as attending the event. Idempotent.
func (s *Service) Attend(ctx context.Context, requesterID, eventID uuid.UUID) error {
	if requesterID == uuid.Nil {
		return ErrUnauthenticated
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}

	return s.repo.AddAttendee(ctx, eventID, requesterID)
}

// Unattend removes the requester's attending edge
func (s *Service) Unattend(ctx context.Context, requesterID, eventID uuid.UUID) error {
	if requesterID == uuid.Nil {
		return ErrUnauthenticated
	}
	return s.repo.RemoveAttendee(ctx, eventID, requesterID)
}

func fromDiscovered(found eventful.Event) *Event {
	event := &Event{
		ID:         uuid.New(),
		ExternalID: found.ID,
		Title:      found.Title,
		Category:   found.Category,
	}
	if found.VenueName != "" {
		event.Venue = sql.NullString{String: found.VenueName, Valid: true}
	}
	if found.City != "" {
		event.City = sql.NullString{String: found.City, Valid: true}
	}
	if found.StartTime != nil {
		event.StartsAt = sql.NullTime{Time: *found.StartTime, Valid: true}
	}
	if found.ImageURL != "" {
		event.ImageURL = sql.NullString{String: found.ImageURL, Valid: true}
	}
	return event
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
