package eventful

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// ErrUnavailable marks provider failures a client may retry: timeouts,
// connection errors, rate limiting and provider-side 5xx responses.
var ErrUnavailable = errors.New("event provider unavailable")

// timeLayout is the provider's local start-time format
const timeLayout = "2006-01-02 15:04:05"

// Client represents the Eventful discovery API client.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// SearchQuery represents an event search request.
type SearchQuery struct {
	Location   string
	Categories []string
	Dates      string
	Page       int
	PageSize   int
}

// Event represents a discovered event.
type Event struct {
	ID        string
	Title     string
	VenueName string
	City      string
	Category  string
	StartTime *time.Time
	ImageURL  string
}

// SearchResult holds a page of discovered events.
type SearchResult struct {
	Events     []Event
	TotalItems int
	PageCount  int
	PageNumber int
}

// NewClient creates a new Eventful client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

type searchResponse struct {
	Events struct {
		Event []eventPayload `json:"event"`
	} `json:"events"`
	TotalItems json.Number `json:"total_items"`
	PageCount  json.Number `json:"page_count"`
	PageNumber json.Number `json:"page_number"`
}

type eventPayload struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	VenueName string `json:"venue_name"`
	CityName  string `json:"city_name"`
	StartTime string `json:"start_time"`
	Image     *struct {
		Medium struct {
			URL string `json:"url"`
		} `json:"medium"`
	} `json:"image"`
	Categories *struct {
		Category []struct {
			ID string `json:"id"`
		} `json:"category"`
	} `json:"categories"`
}

// Search queries the provider for events matching the query.
func (c *Client) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, fmt.Errorf("eventful search config error: api key is empty")
	}

	categories := "music,comedy,performing_arts,sports"
	if len(q.Categories) > 0 {
		categories = strings.Join(q.Categories, ",")
	}
	dates := q.Dates
	if dates == "" {
		dates = "all"
	}
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = 15
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("app_key", c.apiKey)
	params.Set("location", q.Location)
	params.Set("category", categories)
	params.Set("date", dates)
	params.Set("page_number", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))

	var payload searchResponse
	if err := c.getJSON(ctx, "/json/events/search", params, &payload); err != nil {
		return nil, err
	}

	result := &SearchResult{
		Events:     make([]Event, 0, len(payload.Events.Event)),
		TotalItems: numberToInt(payload.TotalItems),
		PageCount:  numberToInt(payload.PageCount),
		PageNumber: numberToInt(payload.PageNumber),
	}
	for _, p := range payload.Events.Event {
		result.Events = append(result.Events, transformEvent(p))
	}

	return result, nil
}

// Get fetches a single event by provider id.
func (c *Client) Get(ctx context.Context, id string) (*Event, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, fmt.Errorf("eventful get config error: api key is empty")
	}

	params := url.Values{}
	params.Set("app_key", c.apiKey)
	params.Set("id", id)

	var payload eventPayload
	if err := c.getJSON(ctx, "/json/events/get", params, &payload); err != nil {
		return nil, err
	}

	event := transformEvent(payload)
	return &event, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dest interface{}) error {
	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("eventful request error: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			body = []byte(fmt.Sprintf("<failed to read body: %v>", readErr))
		}
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("eventful http error: %w: status=%d body=%s", ErrUnavailable, resp.StatusCode, string(body))
		}
		return fmt.Errorf("eventful http error: status=%d body=%s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("eventful decode error: %w", err)
	}
	return nil
}

func transformEvent(p eventPayload) Event {
	event := Event{
		ID:        p.ID,
		Title:     p.Title,
		VenueName: p.VenueName,
		City:      p.CityName,
	}
	if p.StartTime != "" {
		if t, err := time.Parse(timeLayout, p.StartTime); err == nil {
			event.StartTime = &t
		}
	}
	if p.Image != nil {
		event.ImageURL = p.Image.Medium.URL
	}
	if p.Categories != nil && len(p.Categories.Category) > 0 {
		event.Category = p.Categories.Category[0].ID
	}
	return event
}

func numberToInt(n json.Number) int {
	v, err := n.Int64()
	if err != nil {
		return 0
	}
	return int(v)
}

func classifyRequestError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return fmt.Errorf("eventful timeout: %w: %v", ErrUnavailable, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("eventful timeout: %w: %v", ErrUnavailable, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("eventful connection error: %w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("eventful request error: %w", err)
}
