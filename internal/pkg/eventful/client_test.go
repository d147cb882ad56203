package eventful

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const searchBody = `{
	"events": {
		"event": [
			{
				"id": "E0-001-001",
				"title": "Jazz Night",
				"venue_name": "Blue Hall",
				"city_name": "Austin",
				"start_time": "2026-09-12 20:00:00",
				"image": {"medium": {"url": "https://img.example.com/jazz.jpg"}},
				"categories": {"category": [{"id": "music"}]}
			},
			{
				"id": "E0-001-002",
				"title": "Open Mic",
				"venue_name": "The Cellar",
				"city_name": "Austin",
				"start_time": ""
			}
		]
	},
	"total_items": 2,
	"page_count": 1,
	"page_number": 1
}`

func TestSearchParsesEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json/events/search" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("invalid path"))
			return
		}
		q := r.URL.Query()
		if q.Get("app_key") != "test-key" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("missing app key"))
			return
		}
		if q.Get("location") != "Austin" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("missing location"))
			return
		}
		if q.Get("category") != "music,comedy,performing_arts,sports" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("unexpected default categories"))
			return
		}
		if q.Get("date") != "all" || q.Get("page_number") != "1" || q.Get("page_size") != "15" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("unexpected default paging"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "test-key", time.Second)
	result, err := client.Search(context.Background(), SearchQuery{Location: "Austin"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.TotalItems != 2 || result.PageCount != 1 || result.PageNumber != 1 {
		t.Fatalf("unexpected paging: %+v", result)
	}
	if len(result.Events) != 2 {
		t.Fatalf("expected two events, got %d", len(result.Events))
	}

	first := result.Events[0]
	if first.ID != "E0-001-001" || first.Title != "Jazz Night" || first.VenueName != "Blue Hall" || first.City != "Austin" {
		t.Fatalf("unexpected event: %+v", first)
	}
	if first.StartTime == nil || !first.StartTime.Equal(time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start time: %v", first.StartTime)
	}
	if first.ImageURL != "https://img.example.com/jazz.jpg" {
		t.Fatalf("unexpected image url: %s", first.ImageURL)
	}
	if first.Category != "music" {
		t.Fatalf("unexpected category: %s", first.Category)
	}

	second := result.Events[1]
	if second.StartTime != nil {
		t.Fatalf("expected nil start time for empty value, got %v", second.StartTime)
	}
	if second.ImageURL != "" {
		t.Fatalf("expected empty image url, got %s", second.ImageURL)
	}
}

func TestSearchEmptyAPIKeyRejected(t *testing.T) {
	client := NewClient("http://localhost:0", "  ", time.Second)

	_, err := client.Search(context.Background(), SearchQuery{Location: "Austin"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "api key is empty") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestSearchHTTPErrorIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "test-key", time.Second)
	_, err := client.Search(context.Background(), SearchQuery{Location: "Austin"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status=429") || !strings.Contains(err.Error(), "body=rate limited") {
		t.Fatalf("expected status and body in error, got %v", err)
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected rate limiting marked retryable, got %v", err)
	}
}

func TestSearchServerErrorMarkedUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "test-key", time.Second)
	_, err := client.Search(context.Background(), SearchQuery{Location: "Austin"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for 502, got %v", err)
	}
}

func TestSearchClientErrorNotMarkedUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad location"))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "test-key", time.Second)
	_, err := client.Search(context.Background(), SearchQuery{Location: "Austin"})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected 400 not marked retryable, got %v", err)
	}
}

func TestSearchTimeoutClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "test-key", 20*time.Millisecond)
	_, err := client.Search(context.Background(), SearchQuery{Location: "Austin"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "eventful timeout") {
		t.Fatalf("expected timeout classification, got %v", err)
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected timeout marked retryable, got %v", err)
	}
}

func TestGetParsesEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json/events/get" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("invalid path"))
			return
		}
		if r.URL.Query().Get("id") != "E0-001-001" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("missing id"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "E0-001-001", "title": "Jazz Night", "venue_name": "Blue Hall", "city_name": "Austin"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "test-key", time.Second)
	event, err := client.Get(context.Background(), "E0-001-001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if event.ID != "E0-001-001" || event.Title != "Jazz Night" {
		t.Fatalf("unexpected event: %+v", event)
	}
}
