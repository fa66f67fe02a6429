// Package backend talks to the single remote form endpoint. The
// endpoint is treated as unreliable: transport errors, non-2xx
// statuses, malformed bodies, and success:false envelopes all collapse
// into ErrUnavailable so callers show one generic failure.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Payload types accepted by the endpoint.
const (
	TypeSessionRequest = "session_request"
	TypeReview         = "review"
	TypePublicShare    = "public_share"
)

// ErrUnavailable is the uniform "connection problem, try again later"
// failure.
var ErrUnavailable = errors.New("backend: unavailable")

// Review is one feed entry as returned by the endpoint.
type Review struct {
	Text      string    `json:"text"`
	Privacy   string    `json:"privacy"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Mood      string    `json:"mood"`
	Timestamp time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
}

type envelope struct {
	Success bool     `json:"success"`
	Reviews []Review `json:"reviews"`
}

// Client posts type-tagged payloads and fetches the review feed.
type Client struct {
	URL  string
	HTTP *http.Client
}

// New builds a client for the endpoint with a 15 second timeout.
func New(endpoint string) *Client {
	return &Client{
		URL:  endpoint,
		HTTP: &http.Client{Timeout: 15 * time.Second},
	}
}

// Post submits payload as JSON. The payload must carry its own "type"
// field.
func (c *Client) Post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("backend: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrUnavailable
	}

	// The endpoint may answer with a bare 200 or a success envelope;
	// only an explicit success:false is a failure.
	var env struct {
		Success *bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Success != nil && !*env.Success {
		return ErrUnavailable
	}
	return nil
}

// FetchReviews retrieves the public feed with `action=reviews`.
func (c *Client) FetchReviews(ctx context.Context) ([]Review, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return nil, fmt.Errorf("backend: parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("action", "reviews")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("backend: build request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrUnavailable
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, ErrUnavailable
	}
	if !env.Success {
		return nil, ErrUnavailable
	}
	return env.Reviews, nil
}
