package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	apperrors "onlydevs/internal/errors"
	"onlydevs/internal/model"
)

// Client is the consumer-side mirror of the gig collection: an HTTP client
// plus an in-memory copy refreshed wholesale from the API, so reads never
// cost a round trip. The mirror is eventually consistent; GetByID may serve
// stale data until the next Refresh.
//
// The server is authoritative: after every successful write the local record
// is replaced with the gig the server returned, never with the client's own
// partial input.
type Client struct {
	baseURL string
	http    *http.Client

	mu      sync.RWMutex
	gigs    []model.Gig
	loading bool
}

// GigInput carries the caller-supplied fields of a new gig.
type GigInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Bounty      string   `json:"bounty"`
	Status      string   `json:"status,omitempty"`
	Author      string   `json:"author"`
}

type listResponse struct {
	Gigs []model.Gig `json:"gigs"`
}

type bulkUpdateRequest struct {
	ID      string          `json:"id"`
	Updates model.GigUpdate `json:"updates"`
}

// New creates a client against the API at baseURL. A nil httpClient falls
// back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// Refresh replaces the whole mirror from the API. Failures are soft: the
// mirror resets to empty and the error is logged, not returned, so callers
// render an empty list instead of breaking.
func (c *Client) Refresh(ctx context.Context) {
	c.setLoading(true)
	defer c.setLoading(false)

	var list listResponse
	if err := c.get(ctx, "/api/gigs", &list); err != nil {
		log.Printf("refresh gigs: %v", err)
		c.mu.Lock()
		c.gigs = []model.Gig{}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.gigs = list.Gigs
	c.mu.Unlock()
}

// Create posts a new gig and, on success, prepends the returned gig to the
// mirror (matching the store's newest-first order) and returns its id.
// Unlike reads, create failures propagate so the posting form can react.
func (c *Client) Create(ctx context.Context, input GigInput) (string, error) {
	var created model.Gig
	if err := c.do(ctx, http.MethodPost, "/api/gigs", input, &created); err != nil {
		return "", fmt.Errorf("create gig: %w", err)
	}

	c.mu.Lock()
	c.gigs = append([]model.Gig{created}, c.gigs...)
	c.mu.Unlock()
	return created.ID, nil
}

// Update sends a partial update and reconciles the mirror with the gig the
// server returned.
func (c *Client) Update(ctx context.Context, id string, updates model.GigUpdate) error {
	var updated model.Gig
	req := bulkUpdateRequest{ID: id, Updates: updates}
	if err := c.do(ctx, http.MethodPut, "/api/gigs", req, &updated); err != nil {
		return fmt.Errorf("update gig: %w", err)
	}

	c.mu.Lock()
	for i := range c.gigs {
		if c.gigs[i].ID == id {
			c.gigs[i] = updated
			break
		}
	}
	c.mu.Unlock()
	return nil
}

// AddMentor appends a mentor to the gig's current local list and sends the
// full resulting list, relying on the server replacing the whole mentors
// field.
func (c *Client) AddMentor(ctx context.Context, gigID string, mentor model.Mentor) error {
	gig, ok := c.GetByID(gigID)
	if !ok {
		return apperrors.ErrGigNotFound
	}
	mentors := make([]model.Mentor, 0, len(gig.Mentors)+1)
	mentors = append(mentors, gig.Mentors...)
	mentors = append(mentors, mentor)
	return c.Update(ctx, gigID, model.GigUpdate{Mentors: &mentors})
}

// GetByID looks up a gig in the mirror only; no network call.
func (c *Client) GetByID(id string) (model.Gig, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.gigs {
		if c.gigs[i].ID == id {
			return c.gigs[i], true
		}
	}
	return model.Gig{}, false
}

// Gigs returns a snapshot of the mirror.
func (c *Client) Gigs() []model.Gig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Gig, len(c.gigs))
	copy(out, c.gigs)
	return out
}

// IsLoading reports whether a Refresh is in flight.
func (c *Client) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Client) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.ErrGigNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
