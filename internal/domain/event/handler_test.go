package event

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/up4/up4-api/internal/pkg/eventful"
)

type fakeDiscovery struct {
	result *eventful.SearchResult
	err    error
}

func (d *fakeDiscovery) Search(ctx context.Context, q eventful.SearchQuery) (*eventful.SearchResult, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.result, nil
}

type fakeRepo struct {
	stored []*Event
}

func (r *fakeRepo) UpsertByExternalID(ctx context.Context, e *Event) (*Event, error) {
	r.stored = append(r.stored, e)
	return e, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	for _, e := range r.stored {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) List(ctx context.Context, filter *ListFilter) ([]*Event, error) {
	return r.stored, nil
}

func (r *fakeRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Event, error) {
	return nil, nil
}

func (r *fakeRepo) AddAttendee(ctx context.Context, eventID, userID uuid.UUID) error { return nil }

func (r *fakeRepo) RemoveAttendee(ctx context.Context, eventID, userID uuid.UUID) error {
	return nil
}

func (r *fakeRepo) IsAttending(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	return false, nil
}

func (r *fakeRepo) ListAttendeeIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (r *fakeRepo) ListAttendingEventIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func TestSearchStoresDiscoveredEvents(t *testing.T) {
	repo := &fakeRepo{}
	discovery := &fakeDiscovery{result: &eventful.SearchResult{
		Events: []eventful.Event{
			{ID: "E0-001-001", Title: "Jazz Night", City: "Austin", Category: "music"},
		},
	}}
	handler := NewHandler(NewService(repo, discovery))

	req := httptest.NewRequest(http.MethodGet, "/?location=Austin", nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.stored) != 1 || repo.stored[0].ExternalID != "E0-001-001" {
		t.Fatalf("expected discovered event stored, got %+v", repo.stored)
	}
}

func TestSearchProviderTimeoutReturns503(t *testing.T) {
	discovery := &fakeDiscovery{
		err: fmt.Errorf("eventful timeout: %w: %v", eventful.ErrUnavailable, context.DeadlineExceeded),
	}
	handler := NewHandler(NewService(&fakeRepo{}, discovery))

	req := httptest.NewRequest(http.MethodGet, "/?location=Austin", nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 for provider timeout, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSearchProviderRequestErrorReturns500(t *testing.T) {
	discovery := &fakeDiscovery{err: errors.New("eventful decode error: unexpected EOF")}
	handler := NewHandler(NewService(&fakeRepo{}, discovery))

	req := httptest.NewRequest(http.MethodGet, "/?location=Austin", nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for non-retryable provider error, got %d", rec.Code)
	}
}

func TestSearchMissingLocationRejected(t *testing.T) {
	handler := NewHandler(NewService(&fakeRepo{}, &fakeDiscovery{}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing location, got %d", rec.Code)
	}
}
