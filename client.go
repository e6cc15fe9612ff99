package inkpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client performs create/read/update/delete calls against the backend post
// collection. All repository traffic goes through the one configured base
// URL; retry and error policy live with the caller. Operations may be
// invoked concurrently — the client holds no mutable state.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a repository client for the collection at baseURL
// (e.g. "http://localhost:3001"). A nil httpClient falls back to
// http.DefaultClient; timeouts belong to the transport, not to this layer.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// List fetches the whole collection. On any failure the prior local state
// is for the caller to retain — nothing is partially applied.
func (c *Client) List(ctx context.Context) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/posts", nil)
	if err != nil {
		return nil, &TransportError{Op: "list", Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "list", Err: err}
	}
	defer resp.Body.Close()
	if !is2xx(resp.StatusCode) {
		return nil, &TransportError{Op: "list", StatusCode: resp.StatusCode}
	}
	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, &TransportError{Op: "list", Err: fmt.Errorf("decode response: %w", err)}
	}
	return posts, nil
}

// Get fetches a single post by id. A backend 404 is ErrNotFound.
func (c *Client) Get(ctx context.Context, id string) (Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.postURL(id), nil)
	if err != nil {
		return Post{}, &TransportError{Op: "get", Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Post{}, &TransportError{Op: "get", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return Post{}, ErrNotFound
	}
	if !is2xx(resp.StatusCode) {
		return Post{}, &TransportError{Op: "get", StatusCode: resp.StatusCode}
	}
	var post Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return Post{}, &TransportError{Op: "get", Err: fmt.Errorf("decode response: %w", err)}
	}
	return post, nil
}

// Create persists a new post; the backend assigns the id and the returned
// record carries it. A backend rejection of the payload surfaces as
// RejectedError with the backend's message when one is present.
func (c *Client) Create(ctx context.Context, payload Post) (Post, error) {
	return c.send(ctx, "create", http.MethodPost, c.baseURL+"/posts", payload)
}

// Update replaces an existing record in full — no partial patch. The same
// failure taxonomy as Create applies, plus ErrNotFound for a vanished id.
func (c *Client) Update(ctx context.Context, id string, payload Post) (Post, error) {
	return c.send(ctx, "update", http.MethodPut, c.postURL(id), payload)
}

// Remove deletes a post. Removing an id the backend no longer has is not an
// error, so callers can drop the record from their local view immediately;
// any other failure leaves local state for a retry or re-sync.
func (c *Client) Remove(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.postURL(id), nil)
	if err != nil {
		return &TransportError{Op: "remove", Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "remove", Err: err}
	}
	defer resp.Body.Close()
	if is2xx(resp.StatusCode) || resp.StatusCode == http.StatusNotFound {
		return nil
	}
	return &TransportError{Op: "remove", StatusCode: resp.StatusCode}
}

func (c *Client) send(ctx context.Context, op, method, url string, payload Post) (Post, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Post{}, &TransportError{Op: op, Err: fmt.Errorf("encode payload: %w", err)}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return Post{}, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return Post{}, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	if !is2xx(resp.StatusCode) {
		return Post{}, c.failure(op, resp)
	}
	var post Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return Post{}, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return post, nil
}

// failure classifies a non-2xx mutation response: 404 is a vanished record,
// other 4xx is a payload rejection (message parsed from a JSON error body
// when present, else the raw response text), anything else is transport.
func (c *Client) failure(op string, resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		msg := strings.TrimSpace(string(raw))
		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
			msg = body.Message
		}
		return &RejectedError{StatusCode: resp.StatusCode, Message: msg}
	}
	return &TransportError{Op: op, StatusCode: resp.StatusCode}
}

func (c *Client) postURL(id string) string {
	return c.baseURL + "/posts/" + id
}

func is2xx(code int) bool { return code >= 200 && code < 300 }
